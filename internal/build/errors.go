// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package build

// StepError wraps the error of a failed build step.
type StepError struct {
	Step string
	Err  error
}

// Error implements the [error] interface.
func (e *StepError) Error() string {
	return e.Step + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*StepError) Is(other error) bool {
	_, ok := other.(*StepError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *StepError) Unwrap() error {
	return e.Err
}
