package near

import (
	"crypto/ed25519"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrivateKeyRoundTrip(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}
	key := ed25519.NewKeyFromSeed(seed)
	encoded := "ed25519:" + base58.Encode(key)

	parsed, err := ParsePrivateKey(encoded)
	require.NoError(t, err)
	assert.Equal(t, key, parsed)

	// Без префикса тоже принимается
	parsed, err = ParsePrivateKey(base58.Encode(key))
	require.NoError(t, err)
	assert.Equal(t, key, parsed)
}

func TestParsePrivateKeyRejectsBadInput(t *testing.T) {
	_, err := ParsePrivateKey("ed25519:not-valid-base58-0OIl")
	require.Error(t, err)

	// Корректный base58, но не 64 байта
	_, err = ParsePrivateKey("ed25519:" + base58.Encode([]byte("short")))
	require.Error(t, err)
}

func TestEncodePublicKey(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	key := ed25519.NewKeyFromSeed(seed)
	pub := key.Public().(ed25519.PublicKey)

	encoded := EncodePublicKey(pub)
	assert.True(t, strings.HasPrefix(encoded, "ed25519:"))

	decoded, err := base58.Decode(strings.TrimPrefix(encoded, "ed25519:"))
	require.NoError(t, err)
	assert.Equal(t, []byte(pub), decoded)
}
