package oracle

import (
	"math"
	"testing"

	"priceoracle/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestQuantize(t *testing.T) {
	cases := []struct {
		price float64
		want  uint64
	}{
		{price: 0, want: 0},
		{price: 150.123456, want: 150123456},
		{price: 1, want: 1_000_000},
		{price: 0.1, want: 100_000},
		{price: 0.000001, want: 1},
		{price: 0.0000004, want: 0},
		{price: 1.1234564, want: 1123456},
		{price: 1.1234566, want: 1123457},
		{price: 64123.987654321, want: 64123987654},
		{price: 1e12, want: 1_000_000_000_000_000_000},
	}

	for _, tc := range cases {
		got, err := Quantize(tc.price)
		require.NoError(t, err, "price %v", tc.price)
		require.Equal(t, tc.want, got, "price %v", tc.price)
	}
}

func TestQuantize_TiesRoundHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		price float64
		want  uint64
	}{
		{price: 0.0000005, want: 1},
		{price: 0.0000015, want: 2},
		{price: 0.0000025, want: 3}, // half-to-even would give 2
		{price: 1.0000025, want: 1000003},
		{price: 2.5000005, want: 2500001},
	}

	for _, tc := range cases {
		got, err := Quantize(tc.price)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "price %v", tc.price)
	}
}

func TestQuantize_NegativeZero(t *testing.T) {
	got, err := Quantize(math.Copysign(0, -1))
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestQuantize_Rejects(t *testing.T) {
	cases := map[string]float64{
		"negative":  -0.5,
		"tiny neg":  -0.0000001,
		"nan":       math.NaN(),
		"+inf":      math.Inf(1),
		"-inf":      math.Inf(-1),
		"overflow":  2e13,
		"max float": math.MaxFloat64,
	}

	for name, price := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Quantize(price)
			require.ErrorIs(t, err, domain.ErrInvalidPrice)
		})
	}
}

func TestQuantize_AboveTwoToThe53(t *testing.T) {
	got, err := Quantize(12345678901.5)
	require.NoError(t, err)
	require.Equal(t, uint64(12345678901500000), got)
	require.Greater(t, got, uint64(1)<<53)
}
