// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package build

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aibor/qus/internal/arch"
	"github.com/aibor/qus/internal/docker"
	"github.com/aibor/qus/internal/dockerfile"
	"github.com/aibor/qus/internal/image"
)

// DefaultRegisterImage is the image used for registering interpreters on the
// host.
const DefaultRegisterImage = "aptman/qus"

// Builder builds qus images for native or foreign architectures.
type Builder struct {
	// Registry resolves architecture names.
	Registry *arch.Registry
	// Runner runs the docker commands.
	Runner docker.Runner
	// Renderer renders the Dockerfiles. Built-in templates if nil.
	Renderer *dockerfile.Renderer
	// BinDir is the build context of the pkg image. It contains the static
	// QEMU binaries.
	BinDir string
	// ContextDir is the build context of the register image. It contains
	// the register.sh script.
	ContextDir string
	// RegisterImage is the image used by [Builder.RegisterInterpreter].
	RegisterImage string
	// BinfmtConfURL is the location of the qemu-binfmt-conf.sh script.
	BinfmtConfURL string
}

func (b *Builder) renderer() *dockerfile.Renderer {
	if b.Renderer == nil {
		return dockerfile.New(nil)
	}

	return b.Renderer
}

func (b *Builder) registerImage() string {
	if b.RegisterImage == "" {
		return DefaultRegisterImage
	}

	return b.RegisterImage
}

func (b *Builder) binfmtConfURL() string {
	if b.BinfmtConfURL == "" {
		return dockerfile.DefaultBinfmtConfURL
	}

	return b.BinfmtConfURL
}

func (b *Builder) run(ctx context.Context, step string, cmd *docker.Command) error {
	slog.Info("Running build step", slog.String("step", step))

	err := b.Runner.Run(ctx, cmd)
	if err != nil {
		return &StepError{Step: step, Err: err}
	}

	return nil
}

// RegisterInterpreter registers the QEMU interpreter for the given target
// architecture on the host. Use it before building a foreign image.
func (b *Builder) RegisterInterpreter(ctx context.Context, target string) error {
	qemuName, err := b.Registry.Normalise(arch.SchemeQEMU, target)
	if err != nil {
		return err //nolint:wrapcheck
	}

	cmd := docker.RunCommand(b.registerImage(), true, "-s", "--", "-p", qemuName)

	return b.run(ctx, "register interpreter "+qemuName, cmd)
}

// GeneratePkgImage builds the image that carries the plain static binaries.
func (b *Builder) GeneratePkgImage(ctx context.Context, ref image.Ref) error {
	content, err := b.renderer().Render(dockerfile.Pkg, nil)
	if err != nil {
		return err //nolint:wrapcheck
	}

	cmd := docker.BuildCommand(ref.Pkg(), b.BinDir, content)

	return b.run(ctx, "pkg image "+ref.Pkg(), cmd)
}

// GenerateRegisterImages builds the register image and the final image and
// runs the final image for listing its interpreters. The final image depends
// on the corresponding pkg image, so [Builder.GeneratePkgImage] must have
// been run before.
func (b *Builder) GenerateRegisterImages(ctx context.Context, ref image.Ref) error {
	entry, err := b.Registry.Lookup(ref.Arch)
	if err != nil {
		return err //nolint:wrapcheck
	}

	registerContent, err := b.renderer().Render(dockerfile.Register, dockerfile.Vars{
		dockerfile.VarBaseArch:      entry.DockerName(),
		dockerfile.VarBinfmtConfURL: b.binfmtConfURL(),
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	finalContent, err := b.renderer().Render(dockerfile.Final, dockerfile.Vars{
		dockerfile.VarRegisterImage: ref.Register(),
		dockerfile.VarPkgImage:      ref.Pkg(),
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	steps := []struct {
		name string
		cmd  *docker.Command
	}{
		{
			name: "register image " + ref.Register(),
			cmd:  docker.BuildCommand(ref.Register(), b.ContextDir, registerContent),
		},
		{
			name: "image " + ref.String(),
			cmd:  docker.BuildCommand(ref.String(), b.ContextDir, finalContent),
		},
		{
			name: "list interpreters " + ref.String(),
			cmd:  docker.RunCommand(ref.String(), true, "-l", "--", "-t"),
		},
	}

	for _, step := range steps {
		err := b.run(ctx, step.name, step.cmd)
		if err != nil {
			return err
		}
	}

	return nil
}

// Build builds all images for the given reference: the pkg image first, then
// the register and final images.
func (b *Builder) Build(ctx context.Context, ref image.Ref) error {
	err := b.GeneratePkgImage(ctx, ref)
	if err != nil {
		return fmt.Errorf("build %s: %w", ref, err)
	}

	err = b.GenerateRegisterImages(ctx, ref)
	if err != nil {
		return fmt.Errorf("build %s: %w", ref, err)
	}

	return nil
}
