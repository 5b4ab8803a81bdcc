// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/qus/internal/arch"
	"github.com/aibor/qus/internal/build"
	"github.com/aibor/qus/internal/docker"
	"github.com/aibor/qus/internal/dockerfile"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func flagsFromArgs(args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

// loadRegistry loads the architecture registry. An explicitly given config
// file must exist. Otherwise the config next to the executable is used if
// present, and the built-in one if not.
func loadRegistry(flags *flags) (*arch.Registry, error) {
	path := flags.ConfigPath

	if path == "" {
		defaultPath, err := arch.DefaultConfigPath()
		if err == nil {
			_, statErr := os.Stat(defaultPath)
			if statErr == nil {
				path = defaultPath
			}
		}
	}

	var (
		registry *arch.Registry
		err      error
	)

	if path == "" {
		slog.Debug("Using built-in architecture config")

		registry, err = arch.Default()
	} else {
		slog.Debug("Using architecture config", slog.String("path", path))

		registry, err = arch.LoadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}

	conflicts := registry.Validate()
	for _, conflict := range conflicts {
		slog.Warn("Ambiguous architecture alias",
			slog.String("token", conflict.Token),
			slog.Any("archs", conflict.Archs),
			slog.String("resolves_to", conflict.Winner()),
		)
	}

	if flags.Strict {
		err := arch.ConflictsError(conflicts)
		if err != nil {
			return nil, err
		}
	}

	return registry, nil
}

func newBuilder(flags *flags, registry *arch.Registry, cfg IO) *build.Builder {
	builder := &build.Builder{
		Registry: registry,
		Runner: &docker.Engine{
			Executable: flags.DockerBin,
			Stdout:     cfg.Stdout,
			Stderr:     cfg.Stderr,
			DryRun:     flags.DryRun,
		},
		BinDir:        flags.BinDir,
		ContextDir:    flags.ContextDir,
		RegisterImage: flags.RegisterImage,
		BinfmtConfURL: flags.BinfmtConfURL,
	}

	if flags.TemplateDir != "" {
		builder.Renderer = dockerfile.New(os.DirFS(flags.TemplateDir))
	}

	return builder
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	registry, err := loadRegistry(flags)
	if err != nil {
		return err
	}

	action := &actionContext{
		flags:    flags,
		registry: registry,
		builder:  newBuilder(flags, registry, cfg),
		stdout:   cfg.Stdout,
	}

	return action.run(ctx)
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func handleRunError(err error) int {
	exitCode := -1

	var cmdErr *docker.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.ExitCode > 0 {
			exitCode = cmdErr.ExitCode
		}
	}

	slog.Error(err.Error())

	return exitCode
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	flags, err := flagsFromArgs(args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.Debug)

	err = run(ctx, flags, cfg)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}
