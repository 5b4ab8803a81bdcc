// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package image

import (
	"fmt"
	"strings"
)

// Source describes where the QEMU binaries come from, like the "debian" or
// "fedora" packages.
type Source struct {
	Name string
	// Tag is used in image tags. If empty, the first character of the name
	// is used.
	Tag string
}

// ParseSource parses a source given as "name" or "name=tag".
func ParseSource(s string) (Source, error) {
	name, tag, _ := strings.Cut(s, "=")

	source := Source{Name: name, Tag: tag}
	if source.TagOrDefault() == "" {
		return Source{}, fmt.Errorf("%w: %q", ErrEmptySource, s)
	}

	return source, nil
}

// TagOrDefault returns the tag used in image names.
func (s Source) TagOrDefault() string {
	if s.Tag != "" {
		return s.Tag
	}

	if s.Name == "" {
		return ""
	}

	return s.Name[:1]
}

// String implements [fmt.Stringer].
func (s Source) String() string {
	if s.Tag == "" {
		return s.Name
	}

	return s.Name + "=" + s.Tag
}

// Set implements [flag.Value].
func (s *Source) Set(value string) error {
	source, err := ParseSource(value)
	if err != nil {
		return err
	}

	*s = source

	return nil
}
