// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package arch

import "fmt"

// Host resolves the architecture of the running host through the given
// [Registry].
//
// The machine name reported by the kernel is tried first, as it carries the
// more specific name on 32 bit ARM hosts. The Go architecture of the running
// binary is the fallback.
func Host(registry *Registry) (string, error) {
	candidates := hostCandidates()

	for _, candidate := range candidates {
		if name, ok := registry.Resolve(candidate); ok {
			return name, nil
		}
	}

	return "", fmt.Errorf("host %v: %w", candidates, ErrUnknownArch)
}
