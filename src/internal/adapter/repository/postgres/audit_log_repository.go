package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cbank/secure-statement-delivery/src/internal/domain"
)

// AuditLogRepository only ever inserts; audit rows are immutable once written.
type AuditLogRepository struct {
	db *sql.DB
}

func NewAuditLogRepository(db *sql.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(ctx context.Context, entry domain.AuditLog) (domain.AuditLog, error) {
	const query = `
INSERT INTO audit_logs (
	trace_id,
	ip_address,
	system_username,
	metadata
) VALUES ($1, $2, $3, $4)
RETURNING audit_id, timestamp`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		entry.TraceID,
		entry.IPAddress,
		entry.SystemUsername,
		entry.Metadata,
	).Scan(&entry.AuditID, &entry.Timestamp); err != nil {
		return domain.AuditLog{}, fmt.Errorf("create audit log entry: %w", err)
	}

	return entry, nil
}
