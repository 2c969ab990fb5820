package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// ErrNoCredentials is returned by profile operations on an anonymous client.
var ErrNoCredentials = errors.New("client has no credentials")

// Error represents an error response from the Warframe Market API.
type Error struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("warframe market api error %d: %s", e.StatusCode, e.Message)
}

// headers returns the header set for one request: the credential-derived
// set when the client is authenticated, otherwise the anonymous set the
// sign-in endpoint expects, with the literal "JWT" placeholder token.
func (c *Client) headers() http.Header {
	if c.creds != nil {
		return c.creds.Headers()
	}
	h := http.Header{}
	h.Set("Content-Type", "application/json; utf-8")
	h.Set("Accept", "application/json")
	h.Set("platform", "pc")
	h.Set("language", "en")
	h.Set("Authorization", "JWT")
	return h
}

// doRequest waits on the rate limiter, then performs one HTTP request.
// The response headers are returned alongside the body because sign-in
// delivers its token in a header. Status >= 400 yields an *Error; there
// is no retry at this layer.
func (c *Client) doRequest(ctx context.Context, method, path string, payload any) ([]byte, http.Header, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}

	req.Header = c.headers()
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
	)

	if resp.StatusCode >= 400 {
		return nil, nil, &Error{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}

	return body, resp.Header, nil
}

// get performs a GET request and decodes the response into result.
func (c *Client) get(ctx context.Context, path string, result any) error {
	body, _, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}

// send performs a request with a JSON body. A nil result discards the
// response body.
func (c *Client) send(ctx context.Context, method, path string, payload, result any) error {
	body, _, err := c.doRequest(ctx, method, path, payload)
	if err != nil {
		return err
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}
