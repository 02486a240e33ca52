package oracle

import (
	"bytes"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"priceoracle/internal/domain"
)

const (
	KeySize  = ed25519.PrivateKeySize
	SeedSize = ed25519.SeedSize
)

// Key is the 64-byte oracle secret: a 32-byte Ed25519 seed followed by 32 bytes
// conventionally holding the public key. Only the seed is used for signing.
type Key [KeySize]byte

func NewKey(raw []byte) (Key, error) {
	var k Key
	if len(raw) != KeySize {
		return k, fmt.Errorf("%w: expected %d bytes, got %d", domain.ErrInvalidKey, KeySize, len(raw))
	}
	copy(k[:], raw)
	return k, nil
}

// ParseKey decodes key material given as hex (optionally 0x-prefixed), base64,
// or a JSON byte array as written by Solana keypair files.
func ParseKey(value string) (Key, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Key{}, fmt.Errorf("%w: key material is empty", domain.ErrInvalidKey)
	}

	if strings.HasPrefix(value, "[") {
		var raw []byte
		var ints []int
		if err := json.Unmarshal([]byte(value), &ints); err != nil {
			return Key{}, fmt.Errorf("%w: malformed byte array: %v", domain.ErrInvalidKey, err)
		}
		for i, n := range ints {
			if n < 0 || n > 255 {
				return Key{}, fmt.Errorf("%w: byte %d out of range: %d", domain.ErrInvalidKey, i, n)
			}
			raw = append(raw, byte(n))
		}
		return NewKey(raw)
	}

	hexValue := strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
	if decoded, err := hex.DecodeString(hexValue); err == nil && len(decoded) == KeySize {
		return NewKey(decoded)
	}
	if decoded, err := base64.StdEncoding.DecodeString(value); err == nil && len(decoded) == KeySize {
		return NewKey(decoded)
	}
	return Key{}, fmt.Errorf("%w: provide %d bytes as hex, base64 or a JSON byte array", domain.ErrInvalidKey, KeySize)
}

func (k Key) Seed() []byte {
	seed := make([]byte, SeedSize)
	copy(seed, k[:SeedSize])
	return seed
}

// PublicKey derives the verification key from the seed half.
func (k Key) PublicKey() ed25519.PublicKey {
	return ed25519.NewKeyFromSeed(k[:SeedSize]).Public().(ed25519.PublicKey)
}

// Consistent reports whether the trailing 32 bytes hold the public key derived from the seed.
func (k Key) Consistent() bool {
	return bytes.Equal(k[SeedSize:], k.PublicKey())
}

func (k Key) String() string { return "oracle.Key(redacted)" }
