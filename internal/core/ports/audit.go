package ports

import (
	"context"

	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
)

// AuditRepository persists authentication audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
	ListByPhone(ctx context.Context, phone string, limit int) ([]domain.AuthEvent, error)
}

// AuditService processes audit events from the dispatcher queue and serves
// per-account history lookups.
type AuditService interface {
	Process(ctx context.Context, event domain.AuthEvent) error
	Recent(ctx context.Context, phone string, limit int) ([]domain.AuthEvent, error)
}

// UserRepository defines persistence for local-mode accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
}
