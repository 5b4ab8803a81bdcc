// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
)

var (
	// ErrHelp is returned when help or version information was requested.
	ErrHelp = flag.ErrHelp

	// ErrReadBuildInfo is returned if build information can not be read.
	ErrReadBuildInfo = errors.New("failed to read build info")

	// ErrUnknownAction is returned for actions qus does not know.
	ErrUnknownAction = errors.New("unknown action")

	// ErrUnresolved is returned if any architecture could not be resolved.
	ErrUnresolved = errors.New("unresolved architectures")
)

// ParseArgsError wraps errors that occur during argument parsing.
type ParseArgsError struct {
	err error
	msg string
}

func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

func (e *ParseArgsError) Unwrap() error {
	return e.err
}
