// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package arch

import "errors"

var (
	// ErrUnknownArch is returned if a token resolves to no registry entry.
	ErrUnknownArch = errors.New("unknown architecture")

	// ErrEmptyArch is returned if an entry has no canonical name.
	ErrEmptyArch = errors.New("empty architecture name")

	// ErrDuplicateArch is returned if a canonical name is used more than
	// once.
	ErrDuplicateArch = errors.New("duplicate architecture")

	// ErrAliasConflict is returned if strict validation finds aliases that
	// resolve ambiguously.
	ErrAliasConflict = errors.New("alias conflict")

	// ErrSchemeInvalid is returned for unknown naming schemes.
	ErrSchemeInvalid = errors.New("unknown naming scheme")

	// ErrNoArchs is returned if a configuration document has no "archs" key
	// or it is empty.
	ErrNoArchs = errors.New("no architectures configured")
)
