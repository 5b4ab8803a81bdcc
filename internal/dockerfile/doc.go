// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dockerfile renders the Dockerfiles of the qus build stages.
//
// Templates use "{{name}}" placeholders. Every placeholder must have a value,
// there are no defaults. The built-in templates can be replaced by providing
// a file system with files of the same names.
package dockerfile
