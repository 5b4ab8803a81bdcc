// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package arch

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// ConfigFileName is the name of the configuration file looked up next to
// the executable.
const ConfigFileName = "config.yml"

//go:embed config.yml
var defaultConfig []byte

// document is the layout of the configuration file. The archs are decoded
// as ordered map, so the entry order of the file is kept.
type document struct {
	Archs yaml.MapSlice `yaml:"archs"`
}

// Load reads a YAML configuration document and creates a [Registry] from
// it. Entries are kept in document order.
func Load(r io.Reader) (*Registry, error) {
	var doc document

	decoder := yaml.NewDecoder(r, yaml.UseOrderedMap())

	err := decoder.Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if len(doc.Archs) == 0 {
		return nil, ErrNoArchs
	}

	entries := make([]Entry, 0, len(doc.Archs))

	for _, item := range doc.Archs {
		name := fmt.Sprint(item.Key)

		descriptor, err := decodeDescriptor(item.Value)
		if err != nil {
			return nil, fmt.Errorf("arch %s: %w", name, err)
		}

		entries = append(entries, Entry{Name: name, Descriptor: descriptor})
	}

	return NewRegistry(entries...)
}

// decodeDescriptor converts the generic value of an ordered map item into a
// [Descriptor]. A missing body is a valid descriptor without any details.
func decodeDescriptor(value any) (Descriptor, error) {
	var descriptor Descriptor

	if value == nil {
		return descriptor, nil
	}

	raw, err := yaml.Marshal(value)
	if err != nil {
		return descriptor, fmt.Errorf("encode: %w", err)
	}

	err = yaml.UnmarshalWithOptions(raw, &descriptor, yaml.DisallowUnknownField())
	if err != nil {
		return descriptor, fmt.Errorf("decode: %w", err)
	}

	return descriptor, nil
}

// LoadFile is like [Load] but reads the document from the given file.
func LoadFile(path string) (*Registry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	registry, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return registry, nil
}

// Default returns the [Registry] of the built-in configuration.
func Default() (*Registry, error) {
	return Load(bytes.NewReader(defaultConfig))
}

// DefaultConfigPath returns the path of the configuration file next to the
// running executable.
func DefaultConfigPath() (string, error) {
	executable, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("executable path: %w", err)
	}

	return filepath.Join(filepath.Dir(executable), ConfigFileName), nil
}
