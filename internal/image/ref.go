// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package image

import (
	"fmt"

	"github.com/google/go-containerregistry/pkg/name"

	"github.com/aibor/qus/internal/arch"
)

const (
	pkgSuffix      = "-pkg"
	registerSuffix = "-register"
)

// Ref is the name of a final qus image.
type Ref struct {
	Repo string
	// Arch is the canonical architecture name.
	Arch    string
	Source  Source
	Version string
}

// NewRef creates a new [Ref] for the given architecture token. The token is
// resolved to its canonical name by the registry first.
func NewRef(
	registry *arch.Registry,
	repo string,
	token string,
	source Source,
	version string,
) (Ref, error) {
	canonical, ok := registry.Resolve(token)
	if !ok {
		return Ref{}, fmt.Errorf("%w: %q", arch.ErrUnknownArch, token)
	}

	ref := Ref{
		Repo:    repo,
		Arch:    canonical,
		Source:  source,
		Version: version,
	}

	err := ref.Validate()
	if err != nil {
		return Ref{}, err
	}

	return ref, nil
}

// Tag returns the tag part of the image name.
func (r Ref) Tag() string {
	return r.Arch + "-" + r.Source.TagOrDefault() + r.Version
}

// String returns the full image name.
func (r Ref) String() string {
	return r.Repo + ":" + r.Tag()
}

// Pkg returns the name of the image that carries the plain binaries.
func (r Ref) Pkg() string {
	return r.String() + pkgSuffix
}

// Register returns the name of the image that carries the register script.
func (r Ref) Register() string {
	return r.String() + registerSuffix
}

// Validate checks that the resulting names are valid.
func (r Ref) Validate() error {
	if r.Repo == "" {
		return ErrEmptyRepo
	}

	if r.Arch == "" {
		return fmt.Errorf("%w: %w", ErrInvalidName, arch.ErrEmptyArch)
	}

	if r.Source.TagOrDefault() == "" {
		return ErrEmptySource
	}

	// The register image has the longest name. If it is valid, the others
	// are as well.
	_, err := name.NewTag(r.Register(), name.WeakValidation)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidName, err)
	}

	return nil
}
