package domain

import "errors"

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrMissingToken        = errors.New("token parameter is required")
	ErrUpstreamFetchFailed = errors.New("price source fetch failed")
	ErrPriceNotFound       = errors.New("price not found")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrSigningFailed       = errors.New("signing failed")
	ErrInvalidKey          = errors.New("invalid oracle key")
)
