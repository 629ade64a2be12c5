package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"communityhub-backend/internal/domain"
	"communityhub-backend/internal/repository"
)

type membershipRequestRepository struct {
	db *sql.DB
}

func NewMembershipRequestRepository(db *sql.DB) repository.MembershipRequestRepository {
	return &membershipRequestRepository{db: db}
}

const requestColumns = `id, org_id, sequence_no, access_token, name, email, phone, address, motivation, policy, status, created_member_id, created_on, decided_on`

func (r *membershipRequestRepository) Create(ctx context.Context, req *domain.MembershipRequest) error {
	query := `INSERT INTO membership_requests (org_id, access_token, name, email, phone, address, motivation, policy, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		req.OrgID, req.AccessToken, req.Name, req.Email, req.Phone, req.Address,
		req.Motivation, req.Policy, req.Status, now).Scan(&req.ID)
	if err != nil {
		return err
	}

	// The sequence number derives from the generated id and never changes.
	req.SequenceNo = fmt.Sprintf("MR-%d-%04d", now.Year(), req.ID)
	_, err = r.db.ExecContext(ctx, `UPDATE membership_requests SET sequence_no = $1 WHERE id = $2`, req.SequenceNo, req.ID)
	return err
}

func (r *membershipRequestRepository) scanOne(row *sql.Row) (*domain.MembershipRequest, error) {
	req := &domain.MembershipRequest{}
	err := row.Scan(&req.ID, &req.OrgID, &req.SequenceNo, &req.AccessToken, &req.Name, &req.Email,
		&req.Phone, &req.Address, &req.Motivation, &req.Policy, &req.Status,
		&req.CreatedMemberID, &req.CreatedOn, &req.DecidedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *membershipRequestRepository) GetByID(ctx context.Context, id int32) (*domain.MembershipRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM membership_requests WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *membershipRequestRepository) GetByAccessToken(ctx context.Context, token string) (*domain.MembershipRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM membership_requests WHERE access_token = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, token))
}

func (r *membershipRequestRepository) ListByOrg(ctx context.Context, orgID int32, status domain.RequestStatus) ([]domain.MembershipRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM membership_requests WHERE org_id = $1`
	args := []any{orgID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.MembershipRequest
	for rows.Next() {
		var req domain.MembershipRequest
		if err := rows.Scan(&req.ID, &req.OrgID, &req.SequenceNo, &req.AccessToken, &req.Name, &req.Email,
			&req.Phone, &req.Address, &req.Motivation, &req.Policy, &req.Status,
			&req.CreatedMemberID, &req.CreatedOn, &req.DecidedOn); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

// TransitionStatus performs the status compare-and-swap. Exactly one of
// any set of concurrent callers with the same from status observes
// won == true; everyone else sees the row already moved on.
func (r *membershipRequestRepository) TransitionStatus(ctx context.Context, id int32, from, to domain.RequestStatus) (bool, error) {
	var query string
	var args []any
	if to.IsTerminal() {
		query = `UPDATE membership_requests SET status = $1, decided_on = $2 WHERE id = $3 AND status = $4`
		args = []any{to, time.Now(), id, from}
	} else {
		query = `UPDATE membership_requests SET status = $1, decided_on = NULL WHERE id = $2 AND status = $3`
		args = []any{to, id, from}
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *membershipRequestRepository) SetCreatedMemberID(ctx context.Context, id int32, memberID *int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE membership_requests SET created_member_id = $1 WHERE id = $2`, memberID, id)
	return err
}

func (r *membershipRequestRepository) Delete(ctx context.Context, id int32) error {
	// Requests that produced a member are never deleted; the service
	// checks first, this guard catches racing deletes.
	res, err := r.db.ExecContext(ctx, `DELETE FROM membership_requests WHERE id = $1 AND created_member_id IS NULL`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrDeleteBlocked
	}
	return nil
}
