package oracle

import "github.com/ethereum/go-ethereum/crypto"

// Hash returns the Keccak-256 digest of the message (legacy Keccak padding, as used on-chain; not SHA3-256).
func Hash(msg Message) [32]byte {
	return keccak256(msg[:])
}

func keccak256(data []byte) [32]byte {
	return crypto.Keccak256Hash(data)
}
