// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package arch provides the architecture registry. It maps canonical
// architecture names, as used for image names, to their descriptors and
// resolves free-form architecture tokens, like "x86_64" or "arm", to those
// canonical names by their aliases.
//
// A [Registry] is constructed once, usually by [Load] from a YAML document,
// and is read-only afterwards. It can be shared freely.
package arch
