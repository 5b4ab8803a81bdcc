// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package arch

import (
	"fmt"
	"slices"
)

// Registry is an ordered, immutable collection of architecture entries.
type Registry struct {
	entries []Entry
}

// NewRegistry creates a new [Registry] from the given entries. The order of
// the entries is kept and decides which entry wins if an alias is used by
// more than one of them.
//
// Canonical names must be non-empty and unique. Aliases are not checked, use
// [Registry.Validate] for that.
func NewRegistry(entries ...Entry) (*Registry, error) {
	seen := make(map[string]struct{}, len(entries))

	for idx, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", idx, ErrEmptyArch)
		}

		if _, exists := seen[entry.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateArch, entry.Name)
		}

		seen[entry.Name] = struct{}{}
	}

	return &Registry{entries: slices.Clone(entries)}, nil
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns a copy of all entries in registry order.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, len(r.entries))
	for idx, entry := range r.entries {
		entry.Descriptor.Aliases = slices.Clone(entry.Descriptor.Aliases)
		entries[idx] = entry
	}

	return entries
}

// Names returns the canonical names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for idx, entry := range r.entries {
		names[idx] = entry.Name
	}

	return names
}

// Resolve returns the canonical name for the given token.
//
// Entries are checked in registry order. An entry matches if the token is
// its canonical name or one of its aliases. The first match wins. If no entry
// matches, false is returned.
func (r *Registry) Resolve(token string) (string, bool) {
	idx := r.index(token)
	if idx < 0 {
		return "", false
	}

	return r.entries[idx].Name, true
}

// Lookup is like [Registry.Resolve] but returns the complete entry. If no
// entry matches, an error wrapping [ErrUnknownArch] is returned.
func (r *Registry) Lookup(token string) (Entry, error) {
	idx := r.index(token)
	if idx < 0 {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownArch, token)
	}

	return r.entries[idx], nil
}

// Normalise resolves the token and returns the name of the matching
// architecture in the given [Scheme].
func (r *Registry) Normalise(scheme Scheme, token string) (string, error) {
	entry, err := r.Lookup(token)
	if err != nil {
		return "", err
	}

	return entry.NameIn(scheme)
}

func (r *Registry) index(token string) int {
	for idx, entry := range r.entries {
		if entry.Name == token {
			return idx
		}

		if entry.Descriptor.IsAlias(token) {
			return idx
		}
	}

	return -1
}
