package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipherRoundTrip(t *testing.T) {
	cipher, err := NewCipher("test-secret-key")
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "board token", plaintext: "abc123token"},
		{name: "empty string", plaintext: ""},
		{name: "unicode", plaintext: "clé-secrète-🔑"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sealed, err := cipher.Encrypt(tt.plaintext)
			require.NoError(t, err)
			assert.NotEqual(t, tt.plaintext, sealed)

			opened, err := cipher.Decrypt(sealed)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, opened)
		})
	}
}

func TestCipherNonDeterministic(t *testing.T) {
	cipher, err := NewCipher("test-secret-key")
	require.NoError(t, err)

	first, err := cipher.Encrypt("same-token")
	require.NoError(t, err)
	second, err := cipher.Encrypt("same-token")
	require.NoError(t, err)

	// Fresh nonce per call: ciphertexts differ, plaintexts match.
	assert.NotEqual(t, first, second)
}

func TestCipherWrongKey(t *testing.T) {
	first, err := NewCipher("key-one")
	require.NoError(t, err)
	second, err := NewCipher("key-two")
	require.NoError(t, err)

	sealed, err := first.Encrypt("token")
	require.NoError(t, err)

	_, err = second.Decrypt(sealed)
	assert.Error(t, err)
}

func TestCipherMalformedInput(t *testing.T) {
	cipher, err := NewCipher("test-secret-key")
	require.NoError(t, err)

	_, err = cipher.Decrypt("not-base64!!!")
	assert.Error(t, err)

	_, err = cipher.Decrypt("c2hvcnQ=") // valid base64, too short for a nonce
	assert.Error(t, err)
}

func TestNewCipherEmptySecret(t *testing.T) {
	_, err := NewCipher("")
	assert.Error(t, err)
}
