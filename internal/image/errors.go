// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package image

import "errors"

var (
	// ErrEmptyRepo is returned if no repository is given.
	ErrEmptyRepo = errors.New("empty repository")

	// ErrEmptySource is returned if the source has neither name nor tag.
	ErrEmptySource = errors.New("empty source")

	// ErrInvalidName is returned if the resulting image name is not a valid
	// image reference.
	ErrInvalidName = errors.New("invalid image name")
)
