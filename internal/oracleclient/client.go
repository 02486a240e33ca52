// Package oracleclient calls a running price oracle and decodes its signed payloads.
package oracleclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"priceoracle/internal/domain"
)

const (
	pricePath     = "/api/v1/price"
	publicKeyPath = "/api/v1/oracle/public-key"

	maxErrorBody = 4 << 10
)

type Client struct {
	http      *http.Client
	baseURL   string
	clientKey string
}

type errorBody struct {
	Error string `json:"error"`
}

// GetSignedPrice requests a signed price for token. An empty clientKey omits trustedClientKey.
func (c *Client) GetSignedPrice(ctx context.Context, token string) (domain.SignedPrice, error) {
	q := url.Values{}
	q.Set("token", token)
	if c.clientKey != "" {
		q.Set("trustedClientKey", c.clientKey)
	}

	var signed domain.SignedPrice
	if err := c.get(ctx, pricePath, q, &signed); err != nil {
		return domain.SignedPrice{}, fmt.Errorf("get signed price for token %q: %w", token, err)
	}
	return signed, nil
}

func (c *Client) GetPublicKey(ctx context.Context) (domain.PublicKeyInfo, error) {
	var info domain.PublicKeyInfo
	if err := c.get(ctx, publicKeyPath, nil, &info); err != nil {
		return domain.PublicKeyInfo{}, fmt.Errorf("get public key: %w", err)
	}
	return info, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case resp.StatusCode == http.StatusBadRequest:
		return domain.ErrMissingToken
	default:
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, readErrorMessage(resp))
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func readErrorMessage(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var body errorBody
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		return body.Error
	}
	if msg := strings.TrimSpace(string(raw)); msg != "" {
		return msg
	}
	return resp.Status
}

func NewClient(httpClient *http.Client, baseURL, clientKey string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{http: httpClient, baseURL: baseURL, clientKey: clientKey}
}
