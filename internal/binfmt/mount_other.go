// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux

package binfmt

import "fmt"

// Mounted always fails, binfmt_misc exists on Linux only.
func Mounted(path string) error {
	return fmt.Errorf("%w: %s", ErrNotMounted, path)
}
