package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/23min/devkit/pkg/envcompose"
)

var watchLayers bool

// composeCmd assembles the combined environment artifact
var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Concatenate environment layers into the combined artifact",
	Long: `Concatenate the active profile's environment layers, in order, into the
combined artifact. The output is truncated and rewritten on every run.
Duplicate keys across layers are kept as separate lines.`,
	Args: cobra.NoArgs,
	RunE: runCompose,
}

func init() {
	composeCmd.Flags().BoolVar(&watchLayers, "watch", false, "keep running and recompose when a layer changes")
	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) error {
	p, err := currentProfile()
	if err != nil {
		return err
	}

	composer := envcompose.New(logger)
	layers := profileLayers(p)
	output := profileOutput(p)

	if watchLayers {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return composer.Watch(ctx, layers, output)
	}

	if err := composer.Compose(layers, output); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
