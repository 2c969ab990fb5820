// Package auth manages marketplace credentials: loading them from the
// local cache file, signing in interactively when the cache is missing
// or unusable, and deriving the header set authenticated requests carry.
//
// The cache file stores the token and nickname as plaintext JSON with no
// permission hardening. That exposure matches the marketplace tooling this
// replaces and is intentional; anyone hardening it should also migrate
// existing cache files.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
)

// Credentials is an authenticated marketplace identity. Field order matches
// the sorted-key layout of the cache file.
type Credentials struct {
	AuthToken string `json:"auth_token"` // token returned by sign-in
	Nickname  string `json:"nickname"`   // in-game name, used in profile paths
}

// Headers returns the header set attached to every authenticated request.
func (c *Credentials) Headers() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json; utf-8")
	h.Set("Accept", "application/json")
	h.Set("auth_type", "header")
	h.Set("platform", "pc")
	h.Set("language", "en")
	h.Set("Authorization", c.AuthToken)
	return h
}

// Signer exchanges an email and password for credentials. *api.Client
// implements it.
type Signer interface {
	SignIn(ctx context.Context, email, password string) (*Credentials, error)
}

// Resolve returns usable credentials: the cached ones when the store has
// them, otherwise credentials from a fresh interactive sign-in, which are
// cached before returning. A cache file that is missing, unreadable, or
// corrupt triggers the sign-in path rather than surfacing as an error.
func Resolve(ctx context.Context, store *Store, signer Signer, prompter Prompter, logger *slog.Logger) (*Credentials, error) {
	if logger == nil {
		logger = slog.Default()
	}

	creds, err := store.Load()
	if err == nil {
		logger.Info("using cached credentials",
			"path", store.Path(),
			"nickname", creds.Nickname)
		return creds, nil
	}
	logger.Debug("cached credentials unusable", "path", store.Path(), "error", err)

	email, err := prompter.Email()
	if err != nil {
		return nil, fmt.Errorf("reading email: %w", err)
	}
	password, err := prompter.Password()
	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}

	creds, err = signer.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("signing in: %w", err)
	}

	if err := store.Save(creds); err != nil {
		return nil, fmt.Errorf("caching credentials: %w", err)
	}
	logger.Info("signed in", "nickname", creds.Nickname, "cache", store.Path())

	return creds, nil
}
