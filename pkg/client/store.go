// Package client is the Go counterpart of the web client's login flow: it
// submits credentials to the gateway, keeps the issued token in a narrow
// file-backed store, and guards client shells that render protected views.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
)

// ErrNoSession is returned when no usable token is stored.
var ErrNoSession = errors.New("no stored session")

// tokenFile is the on-disk layout of the session slot.
type tokenFile struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenStore is the single place client code touches persisted session state.
// The submission client writes it on login success, the guard reads it; no
// other component may do either.
type TokenStore struct {
	path string
}

// NewTokenStore creates a store rooted at path. If path is empty it defaults
// to ~/.nhatro/session.json.
func NewTokenStore(path string) (*TokenStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".nhatro", "session.json")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create session directory: %w", err)
	}

	return &TokenStore{path: path}, nil
}

// Save persists the token with its expiry. Placeholder values ("null",
// "undefined", whitespace) are rejected outright so the store can never be
// seeded with a stringified absent token.
func (s *TokenStore) Save(token string, ttl time.Duration) error {
	if !domain.ValidToken(token) {
		return fmt.Errorf("refusing to store placeholder token")
	}

	data, err := json.Marshal(tokenFile{
		Token:     token,
		ExpiresAt: time.Now().Add(ttl).UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Load returns the stored token. Missing files, expired sessions, and
// placeholder values all report ErrNoSession: a placeholder behaves exactly
// like an absent token.
func (s *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("read session: %w", err)
	}

	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return "", ErrNoSession
	}

	if !domain.ValidToken(tf.Token) {
		return "", ErrNoSession
	}
	if !tf.ExpiresAt.IsZero() && time.Now().After(tf.ExpiresAt) {
		return "", ErrNoSession
	}

	return tf.Token, nil
}

// Clear removes the stored session. Clearing an absent session is a no-op.
func (s *TokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
