package client

import "sync"

// Guard is the client-side defence-in-depth check for protected views: it
// consults only the local token slot and reports whether the shell should
// bounce to the login view. It runs once per mount — re-render calls are
// no-ops — and never loops: redirecting is the caller's job and the guard
// holds no memory of it beyond the once.
type Guard struct {
	store *TokenStore
	once  sync.Once
	allow bool
}

func NewGuard(store *TokenStore) *Guard {
	return &Guard{store: store}
}

// Allow reports whether the protected view may render. The first call reads
// the store; subsequent calls return the same answer without touching it.
func (g *Guard) Allow() bool {
	g.once.Do(func() {
		_, err := g.store.Load()
		g.allow = err == nil
	})
	return g.allow
}
