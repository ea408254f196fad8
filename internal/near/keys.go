package near

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

const ed25519Prefix = "ed25519:"

// ParsePrivateKey разбирает приватный ключ в формате NEAR ("ed25519:<base58>").
// Ожидается 64-байтовый ключ (seed + публичная часть), как его экспортирует
// near-cli и кошелек.
func ParsePrivateKey(encoded string) (ed25519.PrivateKey, error) {
	raw := strings.TrimPrefix(encoded, ed25519Prefix)
	decoded, err := base58.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}
	if len(decoded) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("unexpected private key length: %d", len(decoded))
	}
	return ed25519.PrivateKey(decoded), nil
}

// EncodePublicKey возвращает публичный ключ в строковом формате NEAR.
func EncodePublicKey(pub ed25519.PublicKey) string {
	return ed25519Prefix + base58.Encode(pub)
}
