package secret_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet-client/internal/secret"
	"wallet-client/pkg/errno"
)

func TestNew_Validation(t *testing.T) {
	testCases := []struct {
		name string
		code string
		ok   bool
	}{
		{name: "valid", code: "123456", ok: true},
		{name: "leading zeros", code: "000000", ok: true},
		{name: "too short", code: "12345", ok: false},
		{name: "too long", code: "1234567", ok: false},
		{name: "empty", code: "", ok: false},
		{name: "non-digit", code: "12a456", ok: false},
		{name: "whitespace", code: "123 56", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entry, err := secret.New(tc.code)
			if tc.ok {
				require.NoError(t, err)
				pin, err := entry.Reveal()
				require.NoError(t, err)
				assert.Equal(t, tc.code, pin)
			} else {
				assert.ErrorIs(t, err, errno.ErrIncompleteSecret)
			}
		})
	}
}

func TestWipe_MakesEntryUnusable(t *testing.T) {
	entry, err := secret.New("654321")
	require.NoError(t, err)

	entry.Wipe()
	assert.True(t, entry.Wiped())

	_, err = entry.Reveal()
	assert.ErrorIs(t, err, errno.ErrSecretConsumed)

	// Idempotent.
	entry.Wipe()
	assert.True(t, entry.Wiped())
}

func TestString_NeverExposesThePin(t *testing.T) {
	entry, err := secret.New("987654")
	require.NoError(t, err)

	rendered := fmt.Sprintf("entry=%v plus=%s", entry, entry)
	assert.NotContains(t, rendered, "987654")
	assert.Contains(t, rendered, "******")
}
