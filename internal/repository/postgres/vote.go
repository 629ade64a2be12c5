package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"communityhub-backend/internal/domain"
	"communityhub-backend/internal/repository"

	"github.com/lib/pq"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) repository.VoteRepository {
	return &voteRepository{db: db}
}

// uniqueViolation is the Postgres error code raised when the
// (request_id, voter_id) primary key already exists.
const uniqueViolation = "23505"

// Create inserts the vote only while the request is still open. The
// status check and the insert are one statement, so a cast racing a
// closing transition cannot slip a row in after the decision.
func (r *voteRepository) Create(ctx context.Context, vote *domain.Vote) error {
	query := `INSERT INTO votes (request_id, voter_id, choice, notes, cast_on)
	          SELECT $1, $2, $3, $4, $5
	          WHERE EXISTS (
	            SELECT 1 FROM membership_requests
	            WHERE id = $1 AND status NOT IN ('APPROVED', 'REJECTED', 'WITHDRAWN')
	          )`
	vote.CastOn = time.Now()
	res, err := r.db.ExecContext(ctx, query, vote.RequestID, vote.VoterID, vote.Choice, vote.Notes, vote.CastOn)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrAlreadyVoted
	}
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrRequestClosed
	}
	return nil
}

func (r *voteRepository) ListByRequest(ctx context.Context, requestID int32) ([]domain.Vote, error) {
	query := `SELECT request_id, voter_id, choice, notes, cast_on FROM votes WHERE request_id = $1 ORDER BY cast_on ASC`
	rows, err := r.db.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var votes []domain.Vote
	for rows.Next() {
		var v domain.Vote
		if err := rows.Scan(&v.RequestID, &v.VoterID, &v.Choice, &v.Notes, &v.CastOn); err != nil {
			return nil, err
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}
