package ports

import (
	"context"

	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
)

// IdentityAuthority verifies a credential pair and issues an opaque session
// token. Implementations: the remote HTTP backend proxy (canonical) and the
// local Mongo-backed store.
type IdentityAuthority interface {
	Authenticate(ctx context.Context, phone, password string) (string, error)
}

// Registrar creates accounts. Only the local identity authority implements
// it; in remote mode registration belongs to the external backend.
type Registrar interface {
	Register(ctx context.Context, phone, password, fullName string) (*domain.User, error)
}
