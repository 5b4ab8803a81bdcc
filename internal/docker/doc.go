// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package docker runs docker CLI commands.
//
// A [Command] describes a single invocation, like "docker build" or
// "docker run", with its options, positional arguments and optional input.
// An [Engine] runs commands and streams their output line by line to the
// configured writers, each line prefixed with the sub command name.
package docker
