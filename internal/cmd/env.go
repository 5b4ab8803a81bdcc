// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const (
	envArgsName     = "QUS_ARGS"
	localConfigFile = ".qus-args"
)

// EnvArgs returns qus arguments from the environment.
func EnvArgs() []string {
	return strings.Fields(os.Getenv(envArgsName))
}

// LocalConfigArgs returns qus arguments from a local config file.
//
// The file's format is one argument per line. Environment variables may be used
// and are expanded with [os.ExpandEnv].
func LocalConfigArgs(fsys fs.FS, file string) ([]string, error) {
	conf, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	args := []string{}

	expandedConf := os.ExpandEnv(string(conf))
	for _, line := range strings.Split(expandedConf, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			args = append(args, line)
		}
	}

	return args, nil
}

// MergedArgs returns the command line arguments with the arguments from the
// local config file and the environment inserted after the program name. So
// the command line arguments take precedence.
func MergedArgs(args []string, fsys fs.FS, file string) ([]string, error) {
	if len(args) == 0 {
		return args, nil
	}

	localArgs, err := LocalConfigArgs(fsys, file)
	if err != nil {
		return nil, err
	}

	merged := make([]string, 0, len(args)+len(localArgs))
	merged = append(merged, args[0])
	merged = append(merged, localArgs...)
	merged = append(merged, EnvArgs()...)
	merged = append(merged, args[1:]...)

	return merged, nil
}
