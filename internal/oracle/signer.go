package oracle

import (
	"crypto/ed25519"
	"fmt"

	"priceoracle/internal/domain"
)

// Signer signs message digests.
type Signer interface {
	Sign(digest [32]byte) ([]byte, error)
	PublicKey() ed25519.PublicKey
}

type Ed25519Signer struct {
	privateKey ed25519.PrivateKey
}

// NewEd25519Signer expands the key seed once; the key length is already guaranteed by Key.
func NewEd25519Signer(key Key) *Ed25519Signer {
	return &Ed25519Signer{privateKey: ed25519.NewKeyFromSeed(key[:SeedSize])}
}

// Sign signs the digest itself, not the raw message.
func (s *Ed25519Signer) Sign(digest [32]byte) ([]byte, error) {
	sig := ed25519.Sign(s.privateKey, digest[:])
	if len(sig) != ed25519.SignatureSize {
		return nil, fmt.Errorf("%w: unexpected signature length %d", domain.ErrSigningFailed, len(sig))
	}
	return sig, nil
}

func (s *Ed25519Signer) PublicKey() ed25519.PublicKey {
	return s.privateKey.Public().(ed25519.PublicKey)
}
