package oracle

import (
	"fmt"
	"math"

	"priceoracle/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	// PriceScale is the fixed-point factor applied to USD prices (6 decimal digits).
	PriceScale       = 1_000_000
	priceScaleDigits = 6
)

// Quantize converts a USD price into its fixed-point form round(price * 1e6).
//
// The float is taken at its shortest decimal representation, so 150.123456
// becomes exactly 150123456.
// Ties round half away from zero (0.0000025 -> 3).
func Quantize(price float64) (uint64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("%w: %v is not a finite number", domain.ErrInvalidPrice, price)
	}
	if price < 0 {
		return 0, fmt.Errorf("%w: negative price %v", domain.ErrInvalidPrice, price)
	}

	scaled := decimal.NewFromFloat(price).Shift(priceScaleDigits).Round(0).BigInt()
	if !scaled.IsUint64() {
		return 0, fmt.Errorf("%w: scaled price %s overflows uint64", domain.ErrInvalidPrice, scaled.String())
	}
	return scaled.Uint64(), nil
}
