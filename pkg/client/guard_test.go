package client

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGuard_AllowsWithStoredSession(t *testing.T) {
	store := tempStore(t)
	if err := store.Save("abc123", time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}

	guard := NewGuard(store)
	if !guard.Allow() {
		t.Fatal("expected guard to allow with a stored session")
	}
}

func TestGuard_DeniesWithoutSession(t *testing.T) {
	guard := NewGuard(tempStore(t))
	if guard.Allow() {
		t.Fatal("expected guard to deny without a session")
	}
}

func TestGuard_DecidesOnce(t *testing.T) {
	store := tempStore(t)
	guard := NewGuard(store)

	if guard.Allow() {
		t.Fatal("expected initial deny")
	}

	// A session appearing later does not flip an already-mounted guard; the
	// decision belongs to the mount that made it.
	if err := store.Save("abc123", time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}
	for i := 0; i < 3; i++ {
		if guard.Allow() {
			t.Fatal("guard must keep its first answer")
		}
	}

	// A fresh guard sees the new session.
	if !NewGuard(store).Allow() {
		t.Fatal("expected fresh guard to allow")
	}
}

func TestGuard_PlaceholderSessionDenies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewTokenStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"token":"undefined"}`), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if NewGuard(store).Allow() {
		t.Fatal("placeholder token must not unlock protected views")
	}
}
