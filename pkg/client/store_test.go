package client

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func tempStore(t *testing.T) *TokenStore {
	t.Helper()
	store, err := NewTokenStore(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestTokenStore_SaveAndLoad(t *testing.T) {
	store := tempStore(t)

	if err := store.Save("abc123", time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}
	token, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "abc123" {
		t.Fatalf("expected abc123, got %q", token)
	}
}

func TestTokenStore_MissingFileIsNoSession(t *testing.T) {
	store := tempStore(t)

	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestTokenStore_RejectsPlaceholders(t *testing.T) {
	store := tempStore(t)

	for _, token := range []string{"null", "undefined", "", "   "} {
		if err := store.Save(token, time.Hour); err == nil {
			t.Errorf("expected save of %q to fail", token)
		}
	}
	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("rejected saves must leave no session, got %v", err)
	}
}

func TestTokenStore_PlaceholderOnDiskIsNoSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewTokenStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	// A slot written by older clients with a stringified absent token.
	if err := os.WriteFile(path, []byte(`{"token":"null"}`), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestTokenStore_MalformedFileIsNoSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewTokenStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestTokenStore_ExpiredSessionIsNoSession(t *testing.T) {
	store := tempStore(t)

	if err := store.Save("abc123", -time.Minute); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestTokenStore_ClearIsIdempotent(t *testing.T) {
	store := tempStore(t)

	if err := store.Save("abc123", time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after clear, got %v", err)
	}
}
