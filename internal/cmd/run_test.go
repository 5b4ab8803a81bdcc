// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/qus/internal/cmd"
)

type output struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func run(t *testing.T, args ...string) (int, *output) {
	t.Helper()
	t.Setenv("QUS_ARGS", "")

	var out output

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	exitCode := cmd.Run(
		ctx,
		append([]string{"qus"}, args...),
		cmd.IO{
			Stdin:  strings.NewReader(""),
			Stdout: &out.stdout,
			Stderr: &out.stderr,
		},
	)

	return exitCode, &out
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun_Help(t *testing.T) {
	exitCode, out := run(t, "-help")

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, out.stderr.String(), "Usage of 'qus'")
	assert.Empty(t, out.stdout.String())
}

func TestRun_NoAction(t *testing.T) {
	exitCode, out := run(t)

	assert.Equal(t, -1, exitCode)
	assert.Contains(t, out.stderr.String(), "no action given")
}

func TestRun_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		exitCode int
		stdout   string
	}{
		{
			name:   "canonical and aliases",
			args:   []string{"resolve", "amd64", "x86_64", "arm", "aarch64"},
			stdout: "amd64\namd64\narmhf\narm64\n",
		},
		{
			name:   "qemu scheme",
			args:   []string{"-scheme=qemu", "resolve", "amd64", "armhf", "s390x"},
			stdout: "x86_64\narm\ns390x\n",
		},
		{
			name:   "docker scheme",
			args:   []string{"-scheme", "docker", "resolve", "armhf", "i686"},
			stdout: "arm32v7\ni386\n",
		},
		{
			name:     "unknown continues",
			args:     []string{"resolve", "sparc", "x64"},
			exitCode: -1,
			stdout:   "amd64\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode, out := run(t, tt.args...)

			assert.Equal(t, tt.exitCode, exitCode)
			assert.Equal(t, tt.stdout, out.stdout.String())
		})
	}
}

func TestRun_List(t *testing.T) {
	config := writeConfig(t, `
archs:
  amd64:
    alias: [x86_64]
    qemu: x86_64
  armhf:
    alias: [arm]
    docker: arm32v7
  riscv64:
`)

	exitCode, out := run(t, "-config", config, "list")

	require.Equal(t, 0, exitCode, out.stderr.String())
	assert.Equal(t,
		"amd64\tqemu=x86_64\tdocker=amd64\taliases=[x86_64]\n"+
			"armhf\tqemu=armhf\tdocker=arm32v7\taliases=[arm]\n"+
			"riscv64\tqemu=riscv64\tdocker=riscv64\taliases=[]\n",
		out.stdout.String(),
	)
}

func TestRun_Config(t *testing.T) {
	conflicting := `
archs:
  armhf:
    alias: [arm]
  armel:
    alias: [arm]
`

	t.Run("missing file", func(t *testing.T) {
		exitCode, _ := run(t, "-config", "/nonexistent/config.yml", "list")
		assert.Equal(t, -1, exitCode)
	})

	t.Run("conflicts warn", func(t *testing.T) {
		exitCode, out := run(t, "-config", writeConfig(t, conflicting), "resolve", "arm")

		assert.Equal(t, 0, exitCode)
		assert.Equal(t, "armhf\n", out.stdout.String())
		assert.Contains(t, out.stderr.String(), "Ambiguous architecture alias")
	})

	t.Run("conflicts strict", func(t *testing.T) {
		exitCode, out := run(t, "-config", writeConfig(t, conflicting), "-strict", "resolve", "arm")

		assert.Equal(t, -1, exitCode)
		assert.Empty(t, out.stdout.String())
		assert.Contains(t, out.stderr.String(), "alias conflict")
	})
}

func TestRun_DryRun(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		exitCode, out := run(t, "-dry-run", "register", "x86_64", "armhf")

		require.Equal(t, 0, exitCode, out.stderr.String())
		assert.Equal(t,
			"docker run --rm --privileged aptman/qus -s -- -p x86_64\n"+
				"docker run --rm --privileged aptman/qus -s -- -p arm\n",
			out.stdout.String(),
		)
	})

	t.Run("build", func(t *testing.T) {
		exitCode, out := run(t,
			"-dry-run",
			"-repo", "localhost/qus",
			"-qemu-version", "7.2",
			"-source", "fedora",
			"build", "arm",
		)

		require.Equal(t, 0, exitCode, out.stderr.String())

		stdout := out.stdout.String()

		assert.Contains(t, stdout,
			"docker build -t localhost/qus:armhf-f7.2-pkg -f - ./bin-static <<EOF\n")
		assert.Contains(t, stdout,
			"docker build -t localhost/qus:armhf-f7.2-register -f - . <<EOF\n")
		assert.Contains(t, stdout, "FROM arm32v7/busybox")
		assert.Contains(t, stdout,
			"docker build -t localhost/qus:armhf-f7.2 -f - . <<EOF\n")
		assert.Contains(t, stdout, "localhost/qus:armhf-f7.2-pkg")
		assert.True(t, strings.HasSuffix(stdout,
			"docker run --rm --privileged localhost/qus:armhf-f7.2 -l -- -t\n"))

		pkgIdx := strings.Index(stdout, "-pkg -f -")
		registerIdx := strings.Index(stdout, "-register -f -")
		assert.Less(t, pkgIdx, registerIdx, "pkg image must be built first")
	})

	t.Run("unknown arch", func(t *testing.T) {
		exitCode, out := run(t, "-dry-run", "pkg", "sparc")

		assert.Equal(t, -1, exitCode)
		assert.Empty(t, out.stdout.String())
		assert.Contains(t, out.stderr.String(), "unknown architecture")
	})
}

func TestRun_Status(t *testing.T) {
	binfmtDir := t.TempDir()

	require.NoError(t, os.WriteFile(
		filepath.Join(binfmtDir, "qemu-aarch64"),
		[]byte("enabled\ninterpreter /usr/bin/qemu-aarch64-static\nflags: F\n"),
		0o600,
	))
	require.NoError(t, os.WriteFile(
		filepath.Join(binfmtDir, "qemu-arm"),
		[]byte("disabled\ninterpreter /usr/bin/qemu-arm-static\nflags: F\n"),
		0o600,
	))

	exitCode, out := run(t, "-binfmt-path", binfmtDir, "status", "arm64", "arm", "riscv64")

	require.Equal(t, 0, exitCode, out.stderr.String())
	assert.Equal(t,
		"arm64\tqemu-aarch64\tenabled /usr/bin/qemu-aarch64-static\n"+
			"armhf\tqemu-arm\tdisabled /usr/bin/qemu-arm-static\n"+
			"riscv64\tqemu-riscv64\tnot registered\n",
		out.stdout.String(),
	)
}
