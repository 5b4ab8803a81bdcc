// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package arch

import "slices"

// Descriptor holds the details of a single architecture.
type Descriptor struct {
	// Aliases are alternative names accepted for the architecture. Nil if
	// the architecture has no aliases.
	Aliases []string `yaml:"alias"`
	// QEMU is the name used by QEMU for its user mode binaries and binfmt
	// interpreters, like "x86_64" or "aarch64". Empty if it is the same as
	// the canonical name.
	QEMU string `yaml:"qemu,omitempty"`
	// Docker is the architecture prefix of official images on Docker Hub,
	// like "arm32v7". Empty if it is the same as the canonical name.
	Docker string `yaml:"docker,omitempty"`
}

// HasAliases returns true if the descriptor has at least one alias.
func (d Descriptor) HasAliases() bool {
	return len(d.Aliases) > 0
}

// IsAlias returns true if the given token is one of the aliases.
func (d Descriptor) IsAlias(token string) bool {
	return d.HasAliases() && slices.Contains(d.Aliases, token)
}

// Entry is a canonical architecture name with its [Descriptor].
type Entry struct {
	Name       string
	Descriptor Descriptor
}

// Matches returns true if the token is the canonical name or an alias of the
// entry.
func (e Entry) Matches(token string) bool {
	return e.Name == token || e.Descriptor.IsAlias(token)
}

// QEMUName returns the name QEMU uses for the architecture.
func (e Entry) QEMUName() string {
	if e.Descriptor.QEMU != "" {
		return e.Descriptor.QEMU
	}

	return e.Name
}

// DockerName returns the Docker Hub architecture prefix.
func (e Entry) DockerName() string {
	if e.Descriptor.Docker != "" {
		return e.Descriptor.Docker
	}

	return e.Name
}

// NameIn returns the name of the architecture in the given [Scheme].
func (e Entry) NameIn(scheme Scheme) (string, error) {
	switch scheme {
	case SchemeCanonical:
		return e.Name, nil
	case SchemeQEMU:
		return e.QEMUName(), nil
	case SchemeDocker:
		return e.DockerName(), nil
	default:
		return "", ErrSchemeInvalid
	}
}
