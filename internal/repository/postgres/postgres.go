package postgres

import (
	"database/sql"

	"communityhub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.OrganizationRepository
	repository.MembershipRequestRepository
	repository.VoteRepository
	repository.AuditRepository
	repository.MemberRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                          db,
		UserRepository:              NewUserRepository(db),
		OrganizationRepository:      NewOrganizationRepository(db),
		MembershipRequestRepository: NewMembershipRequestRepository(db),
		VoteRepository:              NewVoteRepository(db),
		AuditRepository:             NewAuditRepository(db),
		MemberRepository:            NewMemberRepository(db),
		NotificationRepository:      NewNotificationRepository(db),
	}
}
