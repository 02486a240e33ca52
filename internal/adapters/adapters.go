package adapters

import "context"

// PriceSource returns the USD spot price of a token. Failures wrap
// domain.ErrUpstreamFetchFailed or domain.ErrPriceNotFound.
type PriceSource interface {
	FetchUSDPrice(ctx context.Context, token string) (float64, error)
}
