package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"priceoracle/internal/domain"

	"github.com/tidwall/gjson"
)

// DefaultPriceAPIURL is queried as ?ids=<token>&vs_currencies=usd and answers {"<token>":{"usd":<number>}}.
const DefaultPriceAPIURL = "https://api.coingecko.com/api/v3/simple/price"

const maxResponseBytes = 1 << 20

type PriceClient struct {
	http    *http.Client
	baseURL string
}

func (c *PriceClient) FetchUSDPrice(ctx context.Context, token string) (float64, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to parse base URL: %w", domain.ErrUpstreamFetchFailed, err)
	}

	q := u.Query()
	q.Set("ids", token)
	q.Set("vs_currencies", "usd")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request for token %q: %w", domain.ErrUpstreamFetchFailed, token, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request for token %q: %w", domain.ErrUpstreamFetchFailed, token, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("%w: unexpected status code %d for token %q: %s", domain.ErrUpstreamFetchFailed, resp.StatusCode, token, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, fmt.Errorf("%w: failed to read response for token %q: %w", domain.ErrUpstreamFetchFailed, token, err)
	}
	if !gjson.ValidBytes(body) {
		return 0, fmt.Errorf("%w: failed to decode response for token %q", domain.ErrUpstreamFetchFailed, token)
	}

	// token ids may contain gjson path syntax
	usd := gjson.ParseBytes(body).Map()[token].Get("usd")
	if usd.Type != gjson.Number {
		return 0, fmt.Errorf("%w: usd price for token %q not found", domain.ErrPriceNotFound, token)
	}
	return usd.Float(), nil
}

func NewPriceClient(httpClient *http.Client, baseURL string) *PriceClient {
	if baseURL == "" {
		baseURL = DefaultPriceAPIURL
	}
	return &PriceClient{http: httpClient, baseURL: baseURL}
}
