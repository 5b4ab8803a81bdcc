// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package binfmt reads the state of binfmt_misc interpreters registered on
// the host.
package binfmt
