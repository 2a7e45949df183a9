package main

import (
	"github.com/spf13/cobra"

	"github.com/23min/devkit/internal/editor"
)

// editorCmd manages generated editor configuration
var editorCmd = &cobra.Command{
	Use:   "editor",
	Short: "Manage generated editor configuration",
}

var editorSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Regenerate devcontainer.json and VS Code settings from the active profile",
	Args:  cobra.NoArgs,
	RunE:  runEditorSync,
}

func init() {
	editorCmd.AddCommand(editorSyncCmd)
	rootCmd.AddCommand(editorCmd)
}

func runEditorSync(cmd *cobra.Command, args []string) error {
	p, err := currentProfile()
	if err != nil {
		return err
	}
	return editor.NewGenerator(cfg.ProjectRoot, logger).Sync(p)
}
