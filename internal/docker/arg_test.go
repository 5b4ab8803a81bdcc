// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package docker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/qus/internal/docker"
)

func TestBuildArgumentStrings(t *testing.T) {
	tests := []struct {
		name        string
		args        []docker.Argument
		expected    []string
		expectedErr error
	}{
		{
			name:     "empty",
			expected: []string{},
		},
		{
			name: "short and long",
			args: []docker.Argument{
				docker.UniqueArg("t", "img:tag"),
				docker.UniqueArg("rm"),
				docker.RepeatableArg("build-arg", "A=1"),
				docker.RepeatableArg("build-arg", "B=2"),
				docker.UniqueArg("platform", "linux/amd64", "linux/arm64"),
			},
			expected: []string{
				"-t", "img:tag",
				"--rm",
				"--build-arg", "A=1",
				"--build-arg", "B=2",
				"--platform", "linux/amd64,linux/arm64",
			},
		},
		{
			name: "unique collision",
			args: []docker.Argument{
				docker.UniqueArg("t", "a"),
				docker.UniqueArg("t", "b"),
			},
			expectedErr: docker.ErrArgumentCollision,
		},
		{
			name: "repeatable collision",
			args: []docker.Argument{
				docker.RepeatableArg("build-arg", "A=1"),
				docker.RepeatableArg("build-arg", "A=1"),
			},
			expectedErr: docker.ErrArgumentCollision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := docker.BuildArgumentStrings(tt.args)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestArgument_String(t *testing.T) {
	assert.Equal(t, "-t img", docker.UniqueArg("t", "img").String())
	assert.Equal(t, "--privileged", docker.UniqueArg("privileged").String())
}
