// Package provider implements the clients for the three external travel data
// services: geocoding, daily weather forecasts, and landmark image search.
// Each client validates its parameters, builds one query URL against a
// configured base endpoint, performs a single HTTP GET, and translates
// HTTP-level and application-level failures into typed errors. Payloads are
// returned as parsed structs without any reshaping — normalization is the
// trip builder's job.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// defaultTimeout bounds every outbound call. The upstream services answer in
// well under a second; anything slower would stall a whole aggregation pass.
const defaultTimeout = 10 * time.Second

// client carries the pieces shared by all three provider clients: the parsed
// base endpoint, the HTTP client, and an optional outbound rate limiter to
// stay inside third-party API quotas.
type client struct {
	base    *url.URL
	http    *http.Client
	limiter *rate.Limiter
}

// newClient parses baseURL and returns the shared client core. A malformed or
// relative base URL is a configuration error and fails construction — it is
// never deferred to request time.
func newClient(baseURL string, limiter *rate.Limiter) (client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return client{}, fmt.Errorf("provider: malformed base URL %q: %w", baseURL, err)
	}
	if !u.IsAbs() {
		return client{}, fmt.Errorf("provider: base URL %q is not absolute", baseURL)
	}
	return client{
		base:    u,
		http:    &http.Client{Timeout: defaultTimeout},
		limiter: limiter,
	}, nil
}

// get issues one GET with the given query parameters and decodes a 2xx JSON
// response into out. On a non-2xx status it returns whatever onHTTPError
// makes of the status code and raw body. Transport errors and JSON decode
// errors propagate unchanged; there are no retries.
func (c client) get(ctx context.Context, query url.Values, out any, onHTTPError func(status int, body []byte) error) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	u := *c.base
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Error translation gets whatever body bytes were readable; a failed
		// read just means there is no application-level message to extract.
		return onHTTPError(resp.StatusCode, body)
	}
	if readErr != nil {
		return readErr
	}
	return json.Unmarshal(body, out)
}
