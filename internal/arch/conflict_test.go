// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package arch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/qus/internal/arch"
)

func TestRegistry_Validate(t *testing.T) {
	registry, err := arch.NewRegistry(
		arch.Entry{
			Name:       "armhf",
			Descriptor: arch.Descriptor{Aliases: []string{"arm", "arm", "armhf"}},
		},
		arch.Entry{
			Name:       "armel",
			Descriptor: arch.Descriptor{Aliases: []string{"arm", "arm64"}},
		},
		arch.Entry{
			Name: "arm64",
		},
	)
	require.NoError(t, err)

	expected := []arch.Conflict{
		{Token: "arm", Archs: []string{"armhf", "armel"}},
		{Token: "arm64", Archs: []string{"armel", "arm64"}},
	}

	conflicts := registry.Validate()
	assert.Equal(t, expected, conflicts)
	assert.Equal(t, "armhf", conflicts[0].Winner())
	assert.Equal(t, `"arm" claimed by armhf, armel`, conflicts[0].String())
}

func TestConflictsError(t *testing.T) {
	require.NoError(t, arch.ConflictsError(nil))

	err := arch.ConflictsError([]arch.Conflict{
		{Token: "arm", Archs: []string{"armhf", "armel"}},
		{Token: "x", Archs: []string{"a", "b"}},
	})
	require.ErrorIs(t, err, arch.ErrAliasConflict)
	assert.Equal(t,
		"alias conflict: \"arm\" claimed by armhf, armel\n"+
			"alias conflict: \"x\" claimed by a, b",
		err.Error(),
	)
}
