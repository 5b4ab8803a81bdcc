// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package docker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultExecutable is the docker CLI used if none is set.
const DefaultExecutable = "docker"

// Runner runs docker commands.
type Runner interface {
	Run(ctx context.Context, cmd *Command) error
}

// Engine runs docker commands with the docker CLI.
type Engine struct {
	// Executable is the docker CLI binary. [DefaultExecutable] if empty.
	Executable string
	// Stdout receives the standard output of the commands. Discarded if nil.
	Stdout io.Writer
	// Stderr receives the standard error of the commands. Discarded if nil.
	Stderr io.Writer
	// DryRun prints the commands to Stdout instead of running them.
	DryRun bool
}

var _ Runner = (*Engine)(nil)

func (e *Engine) executable() string {
	if e.Executable == "" {
		return DefaultExecutable
	}

	return e.Executable
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}

	return w
}

// Run runs the given command and waits for it to finish.
//
// Output of the command is written line by line, prefixed with
// "[docker <subcommand>] ". If the command fails, a [*CommandError] is
// returned.
func (e *Engine) Run(ctx context.Context, cmd *Command) error {
	script, err := cmd.Script(e.executable())
	if err != nil {
		return fmt.Errorf("build args: %w", err)
	}

	if e.DryRun {
		_, err := fmt.Fprintln(writerOrDiscard(e.Stdout), script)
		return err //nolint:wrapcheck
	}

	slog.Debug("Running docker command", slog.String("command", script))

	argv, _ := cmd.Build()

	execCmd := exec.CommandContext(ctx, e.executable(), argv...)
	if cmd.Stdin != nil {
		execCmd.Stdin = bytes.NewReader(cmd.Stdin)
	}

	stdout, err := execCmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}

	stderr, err := execCmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}

	err = execCmd.Start()
	if err != nil {
		return &CommandError{Subcommand: cmd.Subcommand, Err: err, ExitCode: -1}
	}

	var (
		mu     sync.Mutex
		prefix = "[docker " + cmd.Subcommand + "] "
		group  errgroup.Group
	)

	outWriter := &lineWriter{mu: &mu, dst: writerOrDiscard(e.Stdout), prefix: prefix}
	errWriter := &lineWriter{mu: &mu, dst: writerOrDiscard(e.Stderr), prefix: prefix}

	group.Go(func() error { return outWriter.copyLines(stdout) })
	group.Go(func() error { return errWriter.copyLines(stderr) })

	// All reads must be done before Wait closes the pipes.
	copyErr := group.Wait()

	err = execCmd.Wait()
	if err != nil {
		exitCode := -1

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		return &CommandError{
			Subcommand: cmd.Subcommand,
			Err:        err,
			ExitCode:   exitCode,
		}
	}

	if copyErr != nil {
		return fmt.Errorf("output: %w", copyErr)
	}

	slog.Debug("Docker command done", slog.String("subcommand", cmd.Subcommand))

	return nil
}
