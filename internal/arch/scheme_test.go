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

func TestScheme_UnmarshalText(t *testing.T) {
	tests := []struct {
		input       string
		expected    arch.Scheme
		expectedErr error
	}{
		{input: "canonical", expected: arch.SchemeCanonical},
		{input: "qemu", expected: arch.SchemeQEMU},
		{input: "docker", expected: arch.SchemeDocker},
		{input: "debian", expectedErr: arch.ErrSchemeInvalid},
		{input: "", expectedErr: arch.ErrSchemeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var actual arch.Scheme

			err := actual.UnmarshalText([]byte(tt.input))
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestScheme_MarshalText(t *testing.T) {
	text, err := arch.SchemeQEMU.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "qemu", string(text))

	_, err = arch.Scheme("nope").MarshalText()
	assert.ErrorIs(t, err, arch.ErrSchemeInvalid)
}
