// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build unix

package arch

import (
	"runtime"

	"golang.org/x/sys/unix"
)

func hostCandidates() []string {
	var uts unix.Utsname

	err := unix.Uname(&uts)
	if err != nil {
		return []string{runtime.GOARCH}
	}

	machine := unix.ByteSliceToString(uts.Machine[:])
	if machine == "" {
		return []string{runtime.GOARCH}
	}

	return []string{machine, runtime.GOARCH}
}
