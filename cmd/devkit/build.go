package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"dagger.io/dagger"
	"github.com/spf13/cobra"

	"github.com/23min/devkit/pkg/envcompose"
	"github.com/23min/devkit/pkg/provision"
)

var execTimeout time.Duration

// buildCmd composes the environment and builds the devcontainer
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the devcontainer from the active profile",
	Long: `Compose the active profile's environment layers, then build the
devcontainer image: base image, apt packages, uv, workspace copy, and the
composed environment injected as container variables.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

// execCmd runs a command inside a freshly built devcontainer
var execCmd = &cobra.Command{
	Use:   "exec -- command [args...]",
	Short: "Run a command inside the devcontainer",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExec,
}

func init() {
	execCmd.Flags().DurationVar(&execTimeout, "timeout", 10*time.Minute, "command timeout")
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(execCmd)
}

// buildEnvironment composes the artifact and builds the container for the
// active profile.
func buildEnvironment(ctx context.Context, dag *dagger.Client) (*provision.Environment, error) {
	p, err := currentProfile()
	if err != nil {
		return nil, err
	}

	output := profileOutput(p)
	if err := envcompose.New(logger).Compose(profileLayers(p), output); err != nil {
		return nil, err
	}

	prov := provision.New(dag, logger)
	return prov.Build(ctx, &provision.BuildSpec{
		Name:         p.Name,
		BaseImage:    baseImage(p),
		WorkspaceDir: cfg.ProjectRoot,
		EnvFile:      output,
	})
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dag, err := dagger.Connect(ctx, dagger.WithLogOutput(os.Stderr))
	if err != nil {
		return fmt.Errorf("connect to dagger: %w", err)
	}
	defer dag.Close()

	env, err := buildEnvironment(ctx, dag)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "built %s (%s)\n", env.Name, env.ID)
	return nil
}

func runExec(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dag, err := dagger.Connect(ctx, dagger.WithLogOutput(os.Stderr))
	if err != nil {
		return fmt.Errorf("connect to dagger: %w", err)
	}
	defer dag.Close()

	env, err := buildEnvironment(ctx, dag)
	if err != nil {
		return err
	}

	prov := provision.New(dag, logger)
	result, err := prov.Exec(ctx, env, &provision.ExecOptions{
		Command: args,
		Timeout: execTimeout,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), result.Stdout)
	fmt.Fprint(cmd.ErrOrStderr(), result.Stderr)
	if result.ExitCode != 0 {
		return fmt.Errorf("command exited with status %d", result.ExitCode)
	}
	return nil
}
