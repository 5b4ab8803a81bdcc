// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package arch

import "slices"

const (
	// SchemeCanonical is the registry's own naming, used for image tags.
	SchemeCanonical Scheme = "canonical"
	// SchemeQEMU is the naming of QEMU user mode binaries.
	SchemeQEMU Scheme = "qemu"
	// SchemeDocker is the naming of Docker Hub architecture prefixes.
	SchemeDocker Scheme = "docker"
)

// Scheme is an architecture naming scheme.
type Scheme string

func (s *Scheme) isKnown() bool {
	knownSchemes := []Scheme{
		SchemeCanonical,
		SchemeQEMU,
		SchemeDocker,
	}

	return slices.Contains(knownSchemes, *s)
}

// String implements [fmt.Stringer].
func (s *Scheme) String() string {
	if !s.isKnown() {
		return ""
	}

	return string(*s)
}

// MarshalText implements [encoding.TextMarshaler].
func (s Scheme) MarshalText() ([]byte, error) {
	str := s.String()
	if str == "" {
		return nil, ErrSchemeInvalid
	}

	return []byte(str), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Scheme) UnmarshalText(text []byte) error {
	scheme := Scheme(text)

	if !scheme.isKnown() {
		return ErrSchemeInvalid
	}

	*s = scheme

	return nil
}
