// Package onionoo fetches relay records from the Tor directory service at
// https://onionoo.torproject.org. It is the bulk source feeding contact
// strings into the parser; network failures, non-200 responses, and malformed
// JSON are handled here, never in the parser.
package onionoo

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	json "github.com/goccy/go-json"
)

// DefaultURL is the details document of the public onionoo instance.
const DefaultURL = "https://onionoo.torproject.org/details"

// Relay is the slice of an onionoo relay record this tool cares about.
// Contact is empty when the operator published none.
type Relay struct {
	Nickname    string `json:"nickname"`
	Fingerprint string `json:"fingerprint"`
	Contact     string `json:"contact"`
}

// Details is the decoded details document. Keys other than relays are
// ignored.
type Details struct {
	RelaysPublished string  `json:"relays_published"`
	Relays          []Relay `json:"relays"`
}

// Client fetches the details document. The zero value uses DefaultURL and a
// default HTTP client with a 60s timeout.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 60 * time.Second}
}

func (c *Client) url() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultURL
}

// Details GETs the details document, retrying transient failures (network
// errors and 5xx responses) with exponential backoff until ctx is done or the
// backoff gives up. 4xx responses and malformed JSON are permanent.
func (c *Client) Details(ctx context.Context) (*Details, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 1 * time.Minute

	var out *Details
	op := func() error {
		d, err := c.fetch(ctx)
		if err != nil {
			return err
		}
		out = d
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) fetch(ctx context.Context) (*Details, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(), nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("onionoo: %w", err))
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("onionoo: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("onionoo: %s", resp.Status)
	default:
		return nil, backoff.Permanent(fmt.Errorf("onionoo: %s", resp.Status))
	}

	var d Details
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("onionoo: decoding details: %w", err))
	}
	return &d, nil
}
