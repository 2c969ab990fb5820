package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/wfm-tools/keeper/internal/auth"
)

// passLimiter admits every request immediately and counts the waits.
type passLimiter struct {
	waits atomic.Int64
}

func (l *passLimiter) Wait(context.Context) error {
	l.waits.Add(1)
	return nil
}

// errLimiter refuses every request.
type errLimiter struct {
	err error
}

func (l *errLimiter) Wait(context.Context) error {
	return l.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testClient builds a client with an open limiter and a quiet logger so
// tests exercise the HTTP layer, not the request budget.
func testClient(baseURL string, opts ...ClientOption) *Client {
	base := []ClientOption{
		WithLimiter(&passLimiter{}),
		WithLogger(testLogger()),
	}
	return NewClient(baseURL, append(base, opts...)...)
}

func testCreds() *auth.Credentials {
	return &auth.Credentials{AuthToken: "tok123", Nickname: "Tenno"}
}

func TestNewClient(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		c := NewClient("https://api.example.com")

		if c.baseURL != "https://api.example.com" {
			t.Errorf("baseURL = %q, want %q", c.baseURL, "https://api.example.com")
		}
		if c.httpClient.Timeout != 30*time.Second {
			t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, 30*time.Second)
		}
		if c.limiter == nil {
			t.Error("limiter should not be nil")
		}
		if c.logger == nil {
			t.Error("logger should not be nil")
		}
		if c.creds != nil {
			t.Error("client should be anonymous by default")
		}
	})

	t.Run("with credentials", func(t *testing.T) {
		creds := testCreds()
		c := NewClient("https://api.example.com", WithCredentials(creds))
		if c.creds != creds {
			t.Error("credentials not set")
		}
	})

	t.Run("with limiter", func(t *testing.T) {
		l := &passLimiter{}
		c := NewClient("https://api.example.com", WithLimiter(l))
		if c.limiter != Limiter(l) {
			t.Error("limiter not set")
		}
	})

	t.Run("with timeout", func(t *testing.T) {
		c := NewClient("https://api.example.com", WithTimeout(5*time.Second))
		if c.httpClient.Timeout != 5*time.Second {
			t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, 5*time.Second)
		}
	})

	t.Run("with logger", func(t *testing.T) {
		logger := testLogger()
		c := NewClient("https://api.example.com", WithLogger(logger))
		if c.logger != logger {
			t.Error("logger not set")
		}
	})

	t.Run("with custom HTTP client", func(t *testing.T) {
		hc := &http.Client{Timeout: 10 * time.Second}
		c := NewClient("https://api.example.com", WithHTTPClient(hc))
		if c.httpClient != hc {
			t.Error("custom HTTP client not set")
		}
	})
}

func TestNewLimiter(t *testing.T) {
	t.Run("one request per interval", func(t *testing.T) {
		l := NewLimiter(time.Second)
		if l.Limit() != 1 {
			t.Errorf("Limit() = %v, want 1", l.Limit())
		}
		if l.Burst() != 1 {
			t.Errorf("Burst() = %d, want 1", l.Burst())
		}
	})

	t.Run("non-positive interval falls back", func(t *testing.T) {
		l := NewLimiter(0)
		if l.Limit() != 1 {
			t.Errorf("Limit() = %v, want 1", l.Limit())
		}
	})

	t.Run("custom interval", func(t *testing.T) {
		l := NewLimiter(500 * time.Millisecond)
		if l.Limit() != 2 {
			t.Errorf("Limit() = %v, want 2", l.Limit())
		}
	})
}

func TestError(t *testing.T) {
	err := &Error{
		StatusCode: 403,
		Message:    "Forbidden",
		Body:       []byte(`{"error": "banned"}`),
	}
	want := "warframe market api error 403: Forbidden"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDoRequest(t *testing.T) {
	t.Run("authenticated headers", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers := map[string]string{
				"Authorization": "tok123",
				"auth_type":     "header",
				"platform":      "pc",
				"language":      "en",
				"Accept":        "application/json",
				"Content-Type":  "application/json; utf-8",
			}
			for key, want := range headers {
				if got := r.Header.Get(key); got != want {
					t.Errorf("header %s = %q, want %q", key, got, want)
				}
			}
			if r.Header.Get("X-Request-Id") == "" {
				t.Error("X-Request-Id header missing")
			}
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		c := testClient(server.URL, WithCredentials(testCreds()))
		if _, _, err := c.doRequest(context.Background(), http.MethodGet, "/test", nil); err != nil {
			t.Fatalf("doRequest() error = %v", err)
		}
	})

	t.Run("anonymous placeholder token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "JWT" {
				t.Errorf("Authorization = %q, want %q", got, "JWT")
			}
			if got := r.Header.Get("auth_type"); got != "" {
				t.Errorf("auth_type = %q, want unset", got)
			}
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		c := testClient(server.URL)
		if _, _, err := c.doRequest(context.Background(), http.MethodGet, "/test", nil); err != nil {
			t.Fatalf("doRequest() error = %v", err)
		}
	})

	t.Run("waits on the limiter per request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		limiter := &passLimiter{}
		c := NewClient(server.URL, WithLimiter(limiter), WithLogger(testLogger()))
		for i := 0; i < 3; i++ {
			if _, _, err := c.doRequest(context.Background(), http.MethodGet, "/test", nil); err != nil {
				t.Fatalf("doRequest() error = %v", err)
			}
		}
		if got := limiter.waits.Load(); got != 3 {
			t.Errorf("limiter waits = %d, want 3", got)
		}
	})

	t.Run("limiter error aborts before sending", func(t *testing.T) {
		var hits atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))
		defer server.Close()

		wantErr := errors.New("budget exhausted")
		c := NewClient(server.URL, WithLimiter(&errLimiter{err: wantErr}), WithLogger(testLogger()))
		if _, _, err := c.doRequest(context.Background(), http.MethodGet, "/test", nil); !errors.Is(err, wantErr) {
			t.Fatalf("doRequest() error = %v, want %v", err, wantErr)
		}
		if hits.Load() != 0 {
			t.Errorf("server hits = %d, want 0", hits.Load())
		}
	})

	t.Run("error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error": "banned"}`))
		}))
		defer server.Close()

		c := testClient(server.URL)
		_, _, err := c.doRequest(context.Background(), http.MethodGet, "/test", nil)

		var apiErr *Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("doRequest() error = %T, want *Error", err)
		}
		if apiErr.StatusCode != http.StatusForbidden {
			t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusForbidden)
		}
		if string(apiErr.Body) != `{"error": "banned"}` {
			t.Errorf("Body = %q, want error payload", apiErr.Body)
		}
	})

	t.Run("no retry on server error", func(t *testing.T) {
		var hits atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		c := testClient(server.URL)
		if _, _, err := c.doRequest(context.Background(), http.MethodGet, "/test", nil); err == nil {
			t.Fatal("doRequest() error = nil, want error")
		}
		if hits.Load() != 1 {
			t.Errorf("server hits = %d, want 1", hits.Load())
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		var hits atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := NewClient(server.URL, WithLogger(testLogger()))
		if _, _, err := c.doRequest(ctx, http.MethodGet, "/test", nil); err == nil {
			t.Fatal("doRequest() error = nil, want error")
		}
		if hits.Load() != 0 {
			t.Errorf("server hits = %d, want 0", hits.Load())
		}
	})
}
