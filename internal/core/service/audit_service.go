package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/domain"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/ports"
)

// AuditService persists authentication audit events. It sits behind the
// dispatcher so handlers never block on audit writes.
type AuditService struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, logger zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

// Process writes a single audit event to storage.
func (s *AuditService) Process(ctx context.Context, event domain.AuditEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		s.logger.Error().Err(err).
			Str("username", event.Username).
			Str("action", event.Action).
			Msg("failed to persist audit event")
		return err
	}
	return nil
}
