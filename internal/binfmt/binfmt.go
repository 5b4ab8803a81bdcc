// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package binfmt

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// DefaultPath is where binfmt_misc is usually mounted.
const DefaultPath = "/proc/sys/fs/binfmt_misc"

// EntryPrefix is the name prefix of interpreters registered by the
// qemu-binfmt-conf.sh script.
const EntryPrefix = "qemu-"

var (
	// ErrNotRegistered is returned if no interpreter entry exists.
	ErrNotRegistered = errors.New("interpreter not registered")

	// ErrNotMounted is returned if binfmt_misc is not mounted at the path.
	ErrNotMounted = errors.New("binfmt_misc not mounted")
)

// Interpreter is a registered binfmt_misc entry.
type Interpreter struct {
	Name        string
	Enabled     bool
	Interpreter string
	Flags       string
}

// Read reads the entry of the interpreter for the given QEMU architecture
// name, like "aarch64", from the binfmt_misc file system.
func Read(fsys fs.FS, qemuName string) (Interpreter, error) {
	name := EntryPrefix + qemuName

	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Interpreter{}, fmt.Errorf("%w: %s", ErrNotRegistered, name)
		}

		return Interpreter{}, fmt.Errorf("read %s: %w", name, err)
	}

	return parse(name, content), nil
}

func parse(name string, content []byte) Interpreter {
	interpreter := Interpreter{Name: name}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "enabled":
			interpreter.Enabled = true
		case strings.HasPrefix(line, "interpreter "):
			interpreter.Interpreter = strings.TrimPrefix(line, "interpreter ")
		case strings.HasPrefix(line, "flags:"):
			interpreter.Flags = strings.TrimSpace(strings.TrimPrefix(line, "flags:"))
		}
	}

	return interpreter
}
