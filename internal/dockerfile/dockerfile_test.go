// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dockerfile_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/qus/internal/dockerfile"
)

func TestRenderer_Render_Builtin(t *testing.T) {
	tests := []struct {
		name     string
		template dockerfile.Template
		vars     dockerfile.Vars
		expected string
	}{
		{
			name:     "pkg",
			template: dockerfile.Pkg,
			expected: "FROM scratch\nCOPY ./* /usr/bin/\n",
		},
		{
			name:     "register",
			template: dockerfile.Register,
			vars: dockerfile.Vars{
				dockerfile.VarBaseArch:      "arm32v7",
				dockerfile.VarBinfmtConfURL: "https://example.com/conf.sh",
			},
			expected: "FROM arm32v7/busybox\n" +
				"ENV QEMU_BIN_DIR=/qus/bin\n" +
				"COPY ./register.sh /qus/register\n" +
				"ADD https://example.com/conf.sh /qus/qemu-binfmt-conf.sh\n" +
				"RUN chmod +x /qus/qemu-binfmt-conf.sh\n" +
				"ENTRYPOINT [\"/qus/register\"]\n",
		},
		{
			name:     "final",
			template: dockerfile.Final,
			vars: dockerfile.Vars{
				dockerfile.VarRegisterImage: "aptman/qus:amd64-d7.2-register",
				dockerfile.VarPkgImage:      "aptman/qus:amd64-d7.2-pkg",
			},
			expected: "FROM aptman/qus:amd64-d7.2-register\n" +
				"COPY --from=aptman/qus:amd64-d7.2-pkg /usr/bin/qemu-* /qus/bin/\n" +
				"VOLUME /qus\n",
		},
	}

	renderer := dockerfile.New(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := renderer.Render(tt.template, tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(actual))
		})
	}
}

func TestRenderer_Render_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"spaced.Dockerfile": {Data: []byte("FROM {{ image }}\n")},
		"broken.Dockerfile": {Data: []byte("FROM {{image\n")},
	}

	renderer := dockerfile.New(fsys)

	actual, err := renderer.Render("spaced", dockerfile.Vars{"image": "alpine"})
	require.NoError(t, err)
	assert.Equal(t, "FROM alpine\n", string(actual))

	_, err = renderer.Render("spaced", nil)
	require.ErrorIs(t, err, dockerfile.ErrMissingVariable)
	assert.ErrorContains(t, err, "image")

	_, err = renderer.Render("broken", dockerfile.Vars{"image": "alpine"})
	require.Error(t, err)

	_, err = renderer.Render(dockerfile.Pkg, nil)
	require.ErrorIs(t, err, dockerfile.ErrUnknownTemplate)
}
