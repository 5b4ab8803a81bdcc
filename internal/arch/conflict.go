// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package arch

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Conflict is a token that is claimed by more than one entry, either as alias
// or as canonical name.
type Conflict struct {
	Token string
	// Archs are the canonical names of all entries claiming the token, in
	// registry order. The first one is what [Registry.Resolve] returns.
	Archs []string
}

// Winner returns the canonical name the token resolves to.
func (c Conflict) Winner() string {
	return c.Archs[0]
}

// String implements [fmt.Stringer].
func (c Conflict) String() string {
	return fmt.Sprintf("%q claimed by %s", c.Token, strings.Join(c.Archs, ", "))
}

// Validate returns all tokens that resolve ambiguously. Resolution of those
// still works, the first entry in registry order wins.
func (r *Registry) Validate() []Conflict {
	owners := make(map[string][]string)
	order := []string{}

	claim := func(token, arch string) {
		current, seen := owners[token]
		if slices.Contains(current, arch) {
			return
		}

		if !seen {
			order = append(order, token)
		}

		owners[token] = append(current, arch)
	}

	for _, entry := range r.entries {
		claim(entry.Name, entry.Name)

		for _, alias := range entry.Descriptor.Aliases {
			claim(alias, entry.Name)
		}
	}

	var conflicts []Conflict

	for _, token := range order {
		if archs := owners[token]; len(archs) > 1 {
			conflicts = append(conflicts, Conflict{Token: token, Archs: archs})
		}
	}

	return conflicts
}

// ConflictsError joins the given conflicts into a single error wrapping
// [ErrAliasConflict]. It returns nil if there are no conflicts.
func ConflictsError(conflicts []Conflict) error {
	if len(conflicts) == 0 {
		return nil
	}

	errs := make([]error, 0, len(conflicts))
	for _, conflict := range conflicts {
		errs = append(errs, fmt.Errorf("%w: %s", ErrAliasConflict, conflict))
	}

	return errors.Join(errs...)
}
