package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, Verify(hash, "s3cret"))
	assert.ErrorIs(t, Verify(hash, "S3cret"), ErrMismatch)
	assert.ErrorIs(t, Verify(hash, ""), ErrMismatch)
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("same")
	require.NoError(t, err)
	second, err := Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyMalformedHash(t *testing.T) {
	err := Verify("plaintext", "plaintext")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatch)
}

func TestTempPassword(t *testing.T) {
	testCases := []struct {
		name     string
		length   int
		expected int
	}{
		{name: "configured_length", length: 12, expected: 12},
		{name: "zero_uses_default", length: 0, expected: DefaultTempLength},
		{name: "negative_uses_default", length: -3, expected: DefaultTempLength},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := TempPassword(tc.length)
			require.NoError(t, err)
			assert.Len(t, token, tc.expected)
			assert.Regexp(t, "^[a-z0-9]+$", token)
		})
	}
}
