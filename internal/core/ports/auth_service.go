package ports

import (
	"context"
	"time"
)

// LoginInput carries one credential submission. The pair is transient: it is
// forwarded to the identity authority and never stored or logged.
type LoginInput struct {
	Phone    string
	Password string
	RemoteIP string
}

// LoginResult is what the gateway needs to establish a session: the opaque
// token destined for the HttpOnly cookie, its lifetime, and the upstream
// success message relayed to the client.
type LoginResult struct {
	Token   string
	TTL     time.Duration
	Message string
}

// AuthService is the login gateway's core: credential forwarding, throttling,
// and session revocation.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	Logout(ctx context.Context, token, remoteIP string) error
}
