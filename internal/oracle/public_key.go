package oracle

import (
	"crypto/ed25519"
	"encoding/hex"
	"strconv"

	"priceoracle/internal/domain"
)

func NewPublicKeyInfo(pub ed25519.PublicKey) domain.PublicKeyInfo {
	return domain.PublicKeyInfo{
		PublicKey: hex.EncodeToString(pub),
		Scheme:    "ed25519",
		Hash:      "keccak256",
		Scale:     strconv.Itoa(PriceScale),
	}
}
