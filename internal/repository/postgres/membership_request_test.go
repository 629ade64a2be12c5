package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"communityhub-backend/internal/domain"
	"communityhub-backend/internal/repository/postgres"
)

func TestMembershipRequestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMembershipRequestRepository(db)
	ctx := context.Background()

	req := &domain.MembershipRequest{
		OrgID:       1,
		AccessToken: "tok-1",
		Name:        "Jan Kowalski",
		Email:       "jan@test.com",
		Policy:      domain.ApprovalPolicyMultiBoard,
		Status:      domain.RequestStatusPending,
	}

	mock.ExpectQuery("INSERT INTO membership_requests").
		WithArgs(req.OrgID, req.AccessToken, req.Name, req.Email, req.Phone, req.Address,
			req.Motivation, req.Policy, req.Status, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectExec("UPDATE membership_requests SET sequence_no").
		WithArgs(sqlmock.AnyArg(), int32(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, int32(42), req.ID)
	assert.Regexp(t, `^MR-\d{4}-0042$`, req.SequenceNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMembershipRequestRepository_TransitionStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMembershipRequestRepository(db)
	ctx := context.Background()

	t.Run("wins the swap", func(t *testing.T) {
		mock.ExpectExec("UPDATE membership_requests SET status").
			WithArgs(domain.RequestStatusApproved, sqlmock.AnyArg(), int32(7), domain.RequestStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		won, err := repo.TransitionStatus(ctx, 7, domain.RequestStatusPending, domain.RequestStatusApproved)
		assert.NoError(t, err)
		assert.True(t, won)
	})

	t.Run("loses when the status moved on", func(t *testing.T) {
		mock.ExpectExec("UPDATE membership_requests SET status").
			WithArgs(domain.RequestStatusApproved, sqlmock.AnyArg(), int32(7), domain.RequestStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))

		won, err := repo.TransitionStatus(ctx, 7, domain.RequestStatusPending, domain.RequestStatusApproved)
		assert.NoError(t, err)
		assert.False(t, won)
	})

	t.Run("non-terminal target clears decided_on", func(t *testing.T) {
		mock.ExpectExec("UPDATE membership_requests SET status").
			WithArgs(domain.RequestStatusPending, int32(7), domain.RequestStatusApproved).
			WillReturnResult(sqlmock.NewResult(0, 1))

		won, err := repo.TransitionStatus(ctx, 7, domain.RequestStatusApproved, domain.RequestStatusPending)
		assert.NoError(t, err)
		assert.True(t, won)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMembershipRequestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMembershipRequestRepository(db)
	ctx := context.Background()

	t.Run("deletes an unconverted request", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM membership_requests").
			WithArgs(int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 7))
	})

	t.Run("blocks once a member exists", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM membership_requests").
			WithArgs(int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 7), domain.ErrDeleteBlocked)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMembershipRequestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMembershipRequestRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM membership_requests").
		WithArgs(int32(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
