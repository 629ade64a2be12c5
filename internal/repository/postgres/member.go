package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"communityhub-backend/internal/domain"
	"communityhub-backend/internal/repository"
)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (org_id, request_id, name, email, phone, address, joined_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		m.OrgID, m.RequestID, m.Name, m.Email, m.Phone, m.Address, time.Now()).Scan(&m.ID)
}

func (r *memberRepository) GetByID(ctx context.Context, id int32) (*domain.Member, error) {
	query := `SELECT id, org_id, request_id, name, email, phone, address, joined_on FROM members WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *memberRepository) GetByRequestID(ctx context.Context, requestID int32) (*domain.Member, error) {
	query := `SELECT id, org_id, request_id, name, email, phone, address, joined_on FROM members WHERE request_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, requestID))
}

func (r *memberRepository) scanOne(row *sql.Row) (*domain.Member, error) {
	m := &domain.Member{}
	err := row.Scan(&m.ID, &m.OrgID, &m.RequestID, &m.Name, &m.Email, &m.Phone, &m.Address, &m.JoinedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *memberRepository) ListByOrg(ctx context.Context, orgID int32) ([]domain.Member, error) {
	query := `SELECT id, org_id, request_id, name, email, phone, address, joined_on FROM members WHERE org_id = $1 ORDER BY joined_on DESC`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.ID, &m.OrgID, &m.RequestID, &m.Name, &m.Email, &m.Phone, &m.Address, &m.JoinedOn); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
