package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
	"github.com/nhutty0402/quanly-nhatro/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns the AuditService consumed by the dispatcher
// workers. One Process call per dequeued event.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single authentication audit entry.
func (s *auditService) Process(ctx context.Context, event domain.AuthEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("audit insert: %w", err)
	}

	s.log.Debug().
		Str("phone", event.Phone).
		Str("kind", string(event.Kind)).
		Str("reason", event.Reason).
		Msg("auth event recorded")

	return nil
}

// Recent returns the latest audit entries for a phone number, newest first.
func (s *auditService) Recent(ctx context.Context, phone string, limit int) ([]domain.AuthEvent, error) {
	return s.repo.ListByPhone(ctx, phone, limit)
}
