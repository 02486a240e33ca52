package oracle

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"

	"priceoracle/internal/domain"
)

// MessageSize is the length of the canonical signed message:
// bytes [0,8) scaled price (uint64 LE), bytes [8,16) unix seconds (int64 LE).
const MessageSize = 16

type Message [MessageSize]byte

func Encode(priceScaled uint64, timestamp int64) Message {
	var msg Message
	binary.LittleEndian.PutUint64(msg[:8], priceScaled)
	binary.LittleEndian.PutUint64(msg[8:], uint64(timestamp))
	return msg
}

func (m Message) Price() uint64 {
	return binary.LittleEndian.Uint64(m[:8])
}

func (m Message) Timestamp() int64 {
	return int64(binary.LittleEndian.Uint64(m[8:]))
}

// Assemble renders the signed tuple. Integers are formatted directly, never through float64.
func Assemble(priceScaled uint64, timestamp int64, signature []byte) domain.SignedPrice {
	return domain.SignedPrice{
		Price:     strconv.FormatUint(priceScaled, 10),
		Timestamp: strconv.FormatInt(timestamp, 10),
		Signature: hex.EncodeToString(signature),
	}
}
