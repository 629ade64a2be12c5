package repository

import (
	"context"

	"communityhub-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// User organizations
	AddUserToOrg(ctx context.Context, userOrg *domain.UserOrg) error
	GetUserOrg(ctx context.Context, userID, orgID int32) (*domain.UserOrg, error)
	UpdateUserOrg(ctx context.Context, userOrg *domain.UserOrg) error
	ListBoardMembers(ctx context.Context, orgID int32) ([]domain.User, []domain.UserOrg, error)
}

type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, id int32) (*domain.Organization, error)
	List(ctx context.Context) ([]domain.Organization, error)
	Update(ctx context.Context, org *domain.Organization) error
}

type MembershipRequestRepository interface {
	Create(ctx context.Context, req *domain.MembershipRequest) error
	GetByID(ctx context.Context, id int32) (*domain.MembershipRequest, error)
	GetByAccessToken(ctx context.Context, token string) (*domain.MembershipRequest, error)
	ListByOrg(ctx context.Context, orgID int32, status domain.RequestStatus) ([]domain.MembershipRequest, error)

	// TransitionStatus is a compare-and-swap on the status column:
	// it succeeds only when the stored status still equals from, and
	// reports whether this caller won the swap. It is the sole way a
	// request changes status, which makes terminal transitions
	// exactly-once under concurrent evaluations.
	TransitionStatus(ctx context.Context, id int32, from, to domain.RequestStatus) (bool, error)
	SetCreatedMemberID(ctx context.Context, id int32, memberID *int32) error
	Delete(ctx context.Context, id int32) error
}

type VoteRepository interface {
	// Create appends a vote. The (request_id, voter_id) primary key
	// makes duplicate casts fail atomically with domain.ErrAlreadyVoted,
	// including two concurrent casts by the same voter. The insert is
	// conditional on the request not being terminal, so a cast racing a
	// closing transition fails with domain.ErrRequestClosed instead of
	// leaving a stray ledger row.
	Create(ctx context.Context, vote *domain.Vote) error
	ListByRequest(ctx context.Context, requestID int32) ([]domain.Vote, error)
}

type AuditRepository interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
	ListByRequest(ctx context.Context, requestID int32) ([]domain.AuditEntry, error)
}

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id int32) (*domain.Member, error)
	GetByRequestID(ctx context.Context, requestID int32) (*domain.Member, error)
	ListByOrg(ctx context.Context, orgID int32) ([]domain.Member, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
