package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"priceoracle/internal/adapters"
	"priceoracle/internal/domain"
	"priceoracle/internal/platform/metrics"

	"github.com/jonboulle/clockwork"
)

const defaultFetchTimeout = 10 * time.Second

// Service runs the signing pipeline: fetch -> quantize -> encode -> hash -> sign -> assemble.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	source       adapters.PriceSource
	signer       Signer
	clock        clockwork.Clock
	fetchTimeout time.Duration
}

func NewService(source adapters.PriceSource, signer Signer, clock clockwork.Clock, fetchTimeout time.Duration) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	return &Service{source: source, signer: signer, clock: clock, fetchTimeout: fetchTimeout}
}

// SignPrice produces a signed price for token. The timestamp is read once, after the
// fetch and right before hashing ("signing time").
func (s *Service) SignPrice(ctx context.Context, token string) (domain.SignedPrice, error) {
	price, err := s.fetch(ctx, token)
	if err != nil {
		return domain.SignedPrice{}, err
	}

	scaled, err := Quantize(price)
	if err != nil {
		return domain.SignedPrice{}, fmt.Errorf("quantize price for token %q: %w", token, err)
	}

	timestamp := s.clock.Now().Unix()
	digest := Hash(Encode(scaled, timestamp))

	sig, err := s.signer.Sign(digest)
	if err != nil {
		if !errors.Is(err, domain.ErrSigningFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrSigningFailed, err)
		}
		return domain.SignedPrice{}, err
	}

	metrics.IncSignature()
	return Assemble(scaled, timestamp, sig), nil
}

// PublicKeyInfo describes the verification parameters for payloads signed by this service.
func (s *Service) PublicKeyInfo() domain.PublicKeyInfo {
	return NewPublicKeyInfo(s.signer.PublicKey())
}

func (s *Service) fetch(ctx context.Context, token string) (float64, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	start := s.clock.Now()
	price, err := s.source.FetchUSDPrice(fetchCtx, token)
	metrics.ObservePriceFetch(s.clock.Since(start), err == nil)
	if err == nil {
		return price, nil
	}
	if errors.Is(err, domain.ErrPriceNotFound) || errors.Is(err, domain.ErrUpstreamFetchFailed) {
		return 0, err
	}
	return 0, fmt.Errorf("%w: token %q: %w", domain.ErrUpstreamFetchFailed, token, err)
}
