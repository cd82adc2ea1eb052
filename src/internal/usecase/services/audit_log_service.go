package services

import (
	"context"

	"github.com/cbank/secure-statement-delivery/src/internal/commons"
	"github.com/cbank/secure-statement-delivery/src/internal/domain"
	"github.com/cbank/secure-statement-delivery/src/internal/logger"
)

type AuditLogService struct {
	auditLogRepo domain.AuditLogRepository
}

func NewAuditLogService(auditLogRepo domain.AuditLogRepository) *AuditLogService {
	return &AuditLogService{auditLogRepo: auditLogRepo}
}

// Record appends an audit entry for a completed sensitive action. The write
// is fire-and-forget: a failure degrades observability but must never abort
// the operation that triggered it, so errors are logged and swallowed. The
// insert also survives cancellation of the triggering request.
func (s *AuditLogService) Record(ctx context.Context, action, detail string) {
	scope := commons.RequestScopeFrom(ctx)

	metadata := action
	if detail != "" {
		metadata = action + ": " + detail
	}

	entry := domain.AuditLog{
		TraceID:        scope.TraceID,
		IPAddress:      scope.IP,
		SystemUsername: scope.Actor,
		Metadata:       metadata,
	}

	if _, err := s.auditLogRepo.Create(context.WithoutCancel(ctx), entry); err != nil {
		logger.Error("audit log write failed", err, logger.Fields{
			"action":  action,
			"traceId": scope.TraceID,
		})
	}
}
