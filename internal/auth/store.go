package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrIncomplete is returned by Store.Load when the cache file parses but
// is missing the token or the nickname.
var ErrIncomplete = errors.New("credentials file incomplete")

// Store reads and writes the credential cache file.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the cache file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads credentials from the cache file. It returns an error when the
// file is absent, is not valid JSON, or lacks either field.
func (s *Store) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	if creds.AuthToken == "" || creds.Nickname == "" {
		return nil, fmt.Errorf("%s: %w", s.path, ErrIncomplete)
	}
	return &creds, nil
}

// Save writes credentials to the cache file as indented JSON with sorted
// keys, matching the layout Load expects. The file is world-readable
// plaintext; see the package comment.
func (s *Store) Save(creds *Credentials) error {
	data, err := json.MarshalIndent(creds, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}
