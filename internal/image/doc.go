// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package image derives the names of the images qus builds.
//
// An image name has the form "<repo>:<arch>-<source-tag><version>", like
// "aptman/qus:amd64-d7.2". The pkg and register stages of a build use the
// same name with a "-pkg" or "-register" suffix.
package image
