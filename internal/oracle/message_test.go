package oracle

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode_Layout(t *testing.T) {
	msg := Encode(0x0102030405060708, 0x1112131415161718)

	require.Len(t, msg, MessageSize)
	require.Equal(t, Message{
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
		0x18, 0x17, 0x16, 0x15, 0x14, 0x13, 0x12, 0x11,
	}, msg)
	require.Equal(t, byte(0x08), msg[0], "byte 0 is the price LSB")
	require.Equal(t, byte(0x18), msg[8], "byte 8 is the timestamp LSB")
}

func TestEncode_KnownScenario(t *testing.T) {
	msg := Encode(150123456, 1735830245)

	require.Equal(t, uint64(150123456), binary.LittleEndian.Uint64(msg[:8]))
	require.Equal(t, uint64(1735830245), binary.LittleEndian.Uint64(msg[8:]))
	require.Equal(t, uint64(150123456), msg.Price())
	require.Equal(t, int64(1735830245), msg.Timestamp())
}

func TestEncode_NegativeTimestampIsTwosComplement(t *testing.T) {
	msg := Encode(1, -1)
	for i := 8; i < MessageSize; i++ {
		require.Equal(t, byte(0xff), msg[i])
	}
	require.Equal(t, int64(-1), msg.Timestamp())
}

func TestQuantizeEncode_RoundTrip(t *testing.T) {
	prices := []float64{0, 0.000001, 0.5, 1, 150.123456, 64123.987654321, 1e12, 12345678901.5}

	for _, p := range prices {
		q, err := Quantize(p)
		require.NoError(t, err)
		msg := Encode(q, 42)
		require.Equal(t, q, binary.LittleEndian.Uint64(msg[:8]), "price %v", p)
	}
}

func TestAssemble_FormatsIntegersExactly(t *testing.T) {
	sig := make([]byte, 64)
	for i := range sig {
		sig[i] = byte(0xa0 + i%16)
	}

	got := Assemble(math.MaxUint64, math.MinInt64, sig)

	require.Equal(t, "18446744073709551615", got.Price)
	require.Equal(t, "-9223372036854775808", got.Timestamp)
	require.Len(t, got.Signature, 128)
	require.Equal(t, "a0a1a2a3", got.Signature[:8])

	got = Assemble(9007199254740993, 0, sig)
	require.Equal(t, "9007199254740993", got.Price)
	require.Equal(t, "0", got.Timestamp)
}
