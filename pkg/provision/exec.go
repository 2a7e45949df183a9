package provision

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ExecOptions configures command execution
type ExecOptions struct {
	Command     []string
	WorkDir     string
	Environment map[string]string
	Timeout     time.Duration
}

// ExecResult contains the result of command execution
type ExecResult struct {
	ExitCode  int
	Stdout    string
	Stderr    string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Exec runs a command in a built environment
func (p *Provisioner) Exec(ctx context.Context, env *Environment, opts *ExecOptions) (*ExecResult, error) {
	if p.client == nil {
		return nil, ErrNoClient
	}
	if env == nil || env.Container == nil {
		return nil, fmt.Errorf("%w: environment is not built", ErrInvalidSpec)
	}
	if opts == nil || len(opts.Command) == 0 {
		return nil, fmt.Errorf("%w: command is required", ErrInvalidSpec)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	p.logger.Info("executing command",
		"environment", env.ID,
		"command", strings.Join(opts.Command, " "),
		"workdir", opts.WorkDir,
	)

	container := env.Container
	if opts.WorkDir != "" {
		container = container.WithWorkdir(opts.WorkDir)
	}
	for key, value := range opts.Environment {
		container = container.WithEnvVariable(key, value)
	}

	startTime := time.Now()
	execContainer := container.WithExec(opts.Command)

	stdout, err := execContainer.Stdout(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecFailed, err)
	}
	stderr, err := execContainer.Stderr(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecFailed, err)
	}
	exitCode, err := execContainer.ExitCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecFailed, err)
	}

	endTime := time.Now()
	result := &ExecResult{
		ExitCode:  exitCode,
		Stdout:    stdout,
		Stderr:    stderr,
		StartTime: startTime,
		EndTime:   endTime,
		Duration:  endTime.Sub(startTime),
	}

	p.logger.Info("command executed",
		"environment", env.ID,
		"exit_code", exitCode,
		"duration", result.Duration,
	)

	return result, nil
}
