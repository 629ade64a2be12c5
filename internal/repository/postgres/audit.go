package postgres

import (
	"context"
	"database/sql"
	"time"

	"communityhub-backend/internal/domain"
	"communityhub-backend/internal/repository"
)

type auditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	query := `INSERT INTO audit_entries (request_id, from_status, to_status, changed_at, changed_by, notes)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if entry.ChangedAt.IsZero() {
		entry.ChangedAt = time.Now()
	}
	return r.db.QueryRowContext(ctx, query,
		entry.RequestID, entry.FromStatus, entry.ToStatus, entry.ChangedAt, entry.ChangedBy, entry.Notes).Scan(&entry.ID)
}

func (r *auditRepository) ListByRequest(ctx context.Context, requestID int32) ([]domain.AuditEntry, error) {
	query := `SELECT id, request_id, from_status, to_status, changed_at, changed_by, notes
	          FROM audit_entries WHERE request_id = $1 ORDER BY changed_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(&e.ID, &e.RequestID, &e.FromStatus, &e.ToStatus, &e.ChangedAt, &e.ChangedBy, &e.Notes); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
