// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package docker

import (
	"errors"
	"strconv"
)

var (
	// ErrArgumentCollision is returned if two [Argument]s are considered
	// equal.
	ErrArgumentCollision = errors.New("colliding args")

	// ErrNoSubcommand is returned if a [Command] has no sub command.
	ErrNoSubcommand = errors.New("no sub command")
)

// CommandError wraps any error occurred during [Command] execution.
type CommandError struct {
	Subcommand string
	Err        error
	// ExitCode of the docker process. It is -1 if the process did not exit
	// normally.
	ExitCode int
}

// Error implements the [error] interface.
func (e *CommandError) Error() string {
	msg := "docker " + e.Subcommand + ": " + e.Err.Error()
	if e.ExitCode > 0 {
		msg += " (exit code " + strconv.Itoa(e.ExitCode) + ")"
	}

	return msg
}

// Is implements the [errors.Is] interface.
func (*CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CommandError) Unwrap() error {
	return e.Err
}
