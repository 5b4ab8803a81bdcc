// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package binfmt

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Mounted checks that binfmt_misc is mounted at the given path.
func Mounted(path string) error {
	var stat unix.Statfs_t

	err := unix.Statfs(path, &stat)
	if err != nil {
		return fmt.Errorf("statfs %s: %w", path, err)
	}

	if int64(stat.Type) != unix.BINFMTFS_MAGIC {
		return fmt.Errorf("%w: %s", ErrNotMounted, path)
	}

	return nil
}
