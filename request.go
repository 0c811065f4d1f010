package harmonia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// defaultRetryAfter is used when a 429 arrives without a parseable
// Retry-After header. Spotify always sends one, so this is a fallback.
const defaultRetryAfter = 2 * time.Second

// apiRequest is one prepared endpoint call: method, path relative to the API
// base, query parameters and an optional JSON body.
type apiRequest struct {
	method string
	path   string
	query  url.Values
	body   any
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dst any) error {
	return c.do(ctx, apiRequest{method: http.MethodGet, path: path, query: query}, dst)
}

// do executes a request and decodes the JSON response into dst when dst is
// non-nil.
func (c *Client) do(ctx context.Context, r apiRequest, dst any) error {
	body, err := c.exec(ctx, r)
	if err != nil {
		return err
	}
	if dst == nil || len(body) == 0 {
		return nil
	}
	return decodeInto(body, dst)
}

func decodeInto(body []byte, dst any) error {
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// exec runs one logical call: attach a valid bearer token, send, classify,
// and apply the retry policy.
//
// Retries are confined to 401 (exactly once, after a forced token refresh)
// and 429 (bounded by maxRetries, sleeping per Retry-After). Everything else
// is terminal on the first response.
func (c *Client) exec(ctx context.Context, r apiRequest) ([]byte, error) {
	var payload []byte
	if r.body != nil {
		encoded, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = encoded
	}

	retried401 := false
	retries429 := 0

	for {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrTransport, err)
			}
		}

		token, err := c.store.Token(ctx)
		if err != nil {
			return nil, err
		}

		req, err := c.buildRequest(ctx, r, token.Value, payload)
		if err != nil {
			return nil, err
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTransport, err)
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return nil, fmt.Errorf("%w: reading response body: %v", ErrTransport, readErr)
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return body, nil

		case resp.StatusCode == http.StatusUnauthorized:
			if retried401 {
				return nil, fmt.Errorf("%w: %s %s rejected twice", ErrTokenExpired, r.method, r.path)
			}
			retried401 = true
			c.store.Invalidate(token.Value)
			if c.logger != nil {
				c.logger.Warn("token rejected, forcing refresh", "path", r.path)
			}

		case resp.StatusCode == http.StatusTooManyRequests:
			wait := retryAfter(resp.Header)
			if retries429 >= c.maxRetries {
				return nil, &RateLimitError{RetryAfter: wait}
			}
			retries429++
			if c.logger != nil {
				c.logger.Warn("rate limited, backing off", "path", r.path, "wait", wait, "attempt", retries429)
			}
			if err := c.sleep(ctx, wait); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrTransport, err)
			}

		default:
			return nil, decodeAPIError(resp.StatusCode, body)
		}
	}
}

func (c *Client) buildRequest(ctx context.Context, r apiRequest, token string, payload []byte) (*http.Request, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// retryAfter reads the Retry-After header of a 429 response, in whole
// seconds.
func retryAfter(h http.Header) time.Duration {
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs < 0 {
		return defaultRetryAfter
	}
	return time.Duration(secs) * time.Second
}

// decodeAPIError parses the endpoint error envelope, falling back to the raw
// body when the payload is not the documented shape.
func decodeAPIError(status int, body []byte) error {
	var wrapper struct {
		Error APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapper); err == nil && wrapper.Error.Status != 0 {
		return &wrapper.Error
	}
	return &APIError{Status: status, Message: string(bytes.TrimSpace(body))}
}

// pageQuery builds limit/offset parameters, clamping limit into the API's
// 1..50 window.
func pageQuery(limit, offset int) url.Values {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return url.Values{
		"limit":  {strconv.Itoa(limit)},
		"offset": {strconv.Itoa(offset)},
	}
}

// ids joins up to max ids into the comma-separated form the API expects.
func ids(values []string, max int) (string, error) {
	if len(values) == 0 {
		return "", fmt.Errorf("no ids provided")
	}
	if len(values) > max {
		return "", fmt.Errorf("maximum %d ids allowed", max)
	}
	return strings.Join(values, ","), nil
}
