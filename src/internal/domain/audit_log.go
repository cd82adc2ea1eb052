package domain

import (
	"context"
	"time"
)

// AuditLog rows are append-only; nothing in this system mutates or deletes
// them after the insert.
type AuditLog struct {
	AuditID        int64
	Timestamp      time.Time
	TraceID        string
	IPAddress      string
	SystemUsername string
	Metadata       string
}

type AuditLogRepository interface {
	Create(ctx context.Context, entry AuditLog) (AuditLog, error)
}

// AuditRecorder is invoked by every pipeline stage after a successful
// sensitive operation. Implementations are fire-and-forget: a failed write is
// logged and must never abort the triggering operation.
type AuditRecorder interface {
	Record(ctx context.Context, action, detail string)
}
