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
	"github.com/aibor/qus/internal/binfmt"
	"github.com/aibor/qus/internal/build"
	"github.com/aibor/qus/internal/image"
)

type actionContext struct {
	flags    *flags
	registry *arch.Registry
	builder  *build.Builder
	stdout   io.Writer
}

func (a *actionContext) run(ctx context.Context) error {
	switch a.flags.Action {
	case actionResolve:
		return a.resolve()
	case actionList:
		return a.list()
	case actionRegister:
		return a.forEachArch(a.hostDefault(), func(token string) error {
			return a.builder.RegisterInterpreter(ctx, token)
		})
	case actionPkg:
		return a.forEachRef(a.hostDefault(), func(ref image.Ref) error {
			return a.builder.GeneratePkgImage(ctx, ref)
		})
	case actionImages:
		return a.forEachRef(a.hostDefault(), func(ref image.Ref) error {
			return a.builder.GenerateRegisterImages(ctx, ref)
		})
	case actionBuild:
		return a.forEachRef(a.hostDefault(), func(ref image.Ref) error {
			return a.builder.Build(ctx, ref)
		})
	case actionStatus:
		return a.status()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, a.flags.Action)
	}
}

// hostDefault returns the given architectures or the host architecture if
// none are given.
func (a *actionContext) hostDefault() func() ([]string, error) {
	return func() ([]string, error) {
		if len(a.flags.Archs) > 0 {
			return a.flags.Archs, nil
		}

		host, err := arch.Host(a.registry)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		slog.Debug("Using host architecture", slog.String("arch", host))

		return []string{host}, nil
	}
}

// allDefault returns the given architectures or all known ones if none are
// given.
func (a *actionContext) allDefault() []string {
	if len(a.flags.Archs) > 0 {
		return a.flags.Archs
	}

	return a.registry.Names()
}

func (a *actionContext) forEachArch(
	archs func() ([]string, error),
	fn func(token string) error,
) error {
	tokens, err := archs()
	if err != nil {
		return err
	}

	for _, token := range tokens {
		err := fn(token)
		if err != nil {
			return err
		}
	}

	return nil
}

func (a *actionContext) forEachRef(
	archs func() ([]string, error),
	fn func(ref image.Ref) error,
) error {
	return a.forEachArch(archs, func(token string) error {
		ref, err := image.NewRef(
			a.registry,
			a.flags.Repo,
			token,
			a.flags.Source,
			a.flags.QEMUVersion,
		)
		if err != nil {
			return fmt.Errorf("image name: %w", err)
		}

		return fn(ref)
	})
}

// resolve prints the name of each architecture in the requested scheme.
// Unresolved tokens do not stop the others from being resolved.
func (a *actionContext) resolve() error {
	tokens, err := a.hostDefault()()
	if err != nil {
		return err
	}

	var unresolved []string

	for _, token := range tokens {
		name, err := a.registry.Normalise(a.flags.Scheme, token)
		if err != nil {
			if errors.Is(err, arch.ErrUnknownArch) {
				slog.Warn("Architecture not found", slog.String("token", token))

				unresolved = append(unresolved, token)

				continue
			}

			return err //nolint:wrapcheck
		}

		fmt.Fprintln(a.stdout, name)
	}

	if len(unresolved) > 0 {
		return fmt.Errorf("%w: %v", ErrUnresolved, unresolved)
	}

	return nil
}

func (a *actionContext) list() error {
	for _, entry := range a.registry.Entries() {
		fmt.Fprintf(a.stdout, "%s\tqemu=%s\tdocker=%s\taliases=%v\n",
			entry.Name,
			entry.QEMUName(),
			entry.DockerName(),
			entry.Descriptor.Aliases,
		)
	}

	return nil
}

func (a *actionContext) status() error {
	err := binfmt.Mounted(a.flags.BinfmtPath)
	if err != nil {
		slog.Warn("Cannot verify binfmt_misc mount", slog.Any("error", err))
	}

	fsys := os.DirFS(a.flags.BinfmtPath)

	for _, token := range a.allDefault() {
		entry, err := a.registry.Lookup(token)
		if err != nil {
			return err //nolint:wrapcheck
		}

		state := "not registered"
		entryName := binfmt.EntryPrefix + entry.QEMUName()

		interpreter, err := binfmt.Read(fsys, entry.QEMUName())

		switch {
		case errors.Is(err, binfmt.ErrNotRegistered):
		case err != nil:
			return err //nolint:wrapcheck
		case interpreter.Enabled:
			state = "enabled " + interpreter.Interpreter
		default:
			state = "disabled " + interpreter.Interpreter
		}

		fmt.Fprintf(a.stdout, "%s\t%s\t%s\n", entry.Name, entryName, state)
	}

	return nil
}
