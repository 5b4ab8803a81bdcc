// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package docker

import (
	"strings"
)

// Dockerfile from stdin.
const stdinFile = "-"

// Command is a single docker CLI invocation.
type Command struct {
	// Subcommand like "build" or "run".
	Subcommand string
	// Args are the options of the sub command.
	Args []Argument
	// Positional arguments following the options, like the build context or
	// the image name and its arguments.
	Positional []string
	// Stdin is passed as standard input, if not nil.
	Stdin []byte
}

// BuildCommand returns a "docker build" [Command] that builds the given
// Dockerfile content with the given context directory and tags the result.
func BuildCommand(tag, contextDir string, dockerfile []byte) *Command {
	return &Command{
		Subcommand: "build",
		Args: []Argument{
			UniqueArg("t", tag),
			UniqueArg("f", stdinFile),
		},
		Positional: []string{contextDir},
		Stdin:      dockerfile,
	}
}

// RunCommand returns a "docker run" [Command] for a container that is
// removed once it exits.
func RunCommand(image string, privileged bool, args ...string) *Command {
	cmd := &Command{
		Subcommand: "run",
		Args: []Argument{
			UniqueArg("rm"),
		},
		Positional: append([]string{image}, args...),
	}

	if privileged {
		cmd.Args = append(cmd.Args, UniqueArg("privileged"))
	}

	return cmd
}

// Build compiles the argument list for the docker executable.
func (c *Command) Build() ([]string, error) {
	if c.Subcommand == "" {
		return nil, ErrNoSubcommand
	}

	args, err := BuildArgumentStrings(c.Args)
	if err != nil {
		return nil, err
	}

	argv := make([]string, 0, 1+len(args)+len(c.Positional))
	argv = append(argv, c.Subcommand)
	argv = append(argv, args...)
	argv = append(argv, c.Positional...)

	return argv, nil
}

// Script returns a shell representation of the command. Stdin content is
// presented as here-document.
func (c *Command) Script(executable string) (string, error) {
	argv, err := c.Build()
	if err != nil {
		return "", err
	}

	var builder strings.Builder

	builder.WriteString(executable)

	for _, arg := range argv {
		builder.WriteByte(' ')
		builder.WriteString(shellQuote(arg))
	}

	if c.Stdin != nil {
		builder.WriteString(" <<EOF\n")
		builder.Write(c.Stdin)

		if len(c.Stdin) > 0 && c.Stdin[len(c.Stdin)-1] != '\n' {
			builder.WriteByte('\n')
		}

		builder.WriteString("EOF")
	}

	return builder.String(), nil
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}

	if !strings.ContainsAny(s, " \t\n'\"\\$`*?[]{}()<>|&;#~") {
		return s
	}

	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
