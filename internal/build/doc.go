// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package build drives the docker commands that build qus images and
// register QEMU interpreters on the host.
//
// Every step is a single docker command. Steps run one after the other and
// the first failing one aborts the sequence.
package build
