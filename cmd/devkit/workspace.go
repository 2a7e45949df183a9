package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/23min/devkit/pkg/workspace"
)

// workspaceCmd manages the package workspace manifest
var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage the package workspace",
	RunE:  runWorkspaceList,
}

var workspaceInitCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create the workspace manifest and scaffold the default members",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspaceInit,
}

var workspaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspace members",
	Args:  cobra.NoArgs,
	RunE:  runWorkspaceList,
}

var workspaceAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add and scaffold a workspace member",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspaceAdd,
}

var workspaceRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a member from the manifest (files stay on disk)",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspaceRemove,
}

var workspaceValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that every member has a directory and a package manifest",
	Args:  cobra.NoArgs,
	RunE:  runWorkspaceValidate,
}

func init() {
	workspaceCmd.AddCommand(workspaceInitCmd)
	workspaceCmd.AddCommand(workspaceListCmd)
	workspaceCmd.AddCommand(workspaceAddCmd)
	workspaceCmd.AddCommand(workspaceRemoveCmd)
	workspaceCmd.AddCommand(workspaceValidateCmd)
	rootCmd.AddCommand(workspaceCmd)
}

func manifestPath() string {
	return resolvePath(cfg.ManifestFile)
}

func runWorkspaceInit(cmd *cobra.Command, args []string) error {
	m := workspace.NewManifest(args[0])
	if err := m.Save(manifestPath()); err != nil {
		return err
	}

	scaffolder := workspace.NewScaffolder(cfg.ProjectRoot, logger)
	for _, member := range m.Members {
		if err := scaffolder.Scaffold(m, member.Name); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "initialized workspace %s with %d members\n", m.Name, len(m.Members))
	return nil
}

func runWorkspaceList(cmd *cobra.Command, args []string) error {
	m, err := workspace.Load(manifestPath())
	if err != nil {
		return err
	}

	for _, member := range m.Members {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", member.Name, member.Path)
	}
	return nil
}

func runWorkspaceAdd(cmd *cobra.Command, args []string) error {
	m, err := workspace.Load(manifestPath())
	if err != nil {
		return err
	}

	if err := m.AddMember(args[0], ""); err != nil {
		return err
	}
	if err := workspace.NewScaffolder(cfg.ProjectRoot, logger).Scaffold(m, args[0]); err != nil {
		return err
	}
	return m.Save(manifestPath())
}

func runWorkspaceRemove(cmd *cobra.Command, args []string) error {
	m, err := workspace.Load(manifestPath())
	if err != nil {
		return err
	}

	if err := m.RemoveMember(args[0]); err != nil {
		return err
	}
	return m.Save(manifestPath())
}

func runWorkspaceValidate(cmd *cobra.Command, args []string) error {
	m, err := workspace.Load(manifestPath())
	if err != nil {
		return err
	}

	if err := m.Validate(cfg.ProjectRoot); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "workspace %s is valid (%d members)\n", m.Name, len(m.Members))
	return nil
}
