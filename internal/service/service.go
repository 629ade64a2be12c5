package service

import (
	"context"

	"communityhub-backend/internal/approval"
	"communityhub-backend/internal/domain"
)

type ApprovalService interface {
	SubmitRequest(ctx context.Context, req *domain.MembershipRequest) error
	GetRequest(ctx context.Context, id int32) (*domain.MembershipRequest, []domain.Vote, *domain.Tally, []domain.AuditEntry, error)
	GetRequestByAccessToken(ctx context.Context, token string) (*domain.MembershipRequest, error)
	ListRequests(ctx context.Context, orgID int32, status domain.RequestStatus) ([]domain.MembershipRequest, error)

	CastVote(ctx context.Context, requestID, voterID int32, choice domain.VoteChoice, notes string) (*domain.Vote, approval.Outcome, error)
	PendingVoters(ctx context.Context, requestID int32) ([]domain.User, error)

	OverrideApprove(ctx context.Context, requestID, adminID int32, notes string) error
	OverrideReject(ctx context.Context, requestID, adminID int32, reason string) error

	UpdateStatus(ctx context.Context, requestID, reviewerID int32, to domain.RequestStatus, notes string) error
	Withdraw(ctx context.Context, accessToken string) error
	DeleteRequest(ctx context.Context, requestID int32) error
}

// BoardRosterProvider derives the set of voters entitled to decide a
// request. It is consulted on every evaluation rather than cached, so
// board changes take effect immediately.
type BoardRosterProvider interface {
	CurrentEligibleVoters(ctx context.Context, orgID int32, policy domain.ApprovalPolicy) ([]domain.User, error)
	ResolveKind(ctx context.Context, orgID int32, policy domain.ApprovalPolicy) (approval.Kind, error)
}

// MemberRegistry creates members from approved requests. CreateMember
// is idempotent per request; calling it twice for the same request
// returns the member created the first time.
type MemberRegistry interface {
	CreateMember(ctx context.Context, req *domain.MembershipRequest) (int32, error)
	GetMember(ctx context.Context, id int32) (*domain.Member, error)
	ListMembers(ctx context.Context, orgID int32) ([]domain.Member, error)
}

// EmailService is the notification gateway. Delivery is best-effort;
// callers never roll anything back on a send failure.
type EmailService interface {
	SendVoteRequired(ctx context.Context, email, voterName, applicantName, sequenceNo, policyDescription string) error
	SendVoteReminder(ctx context.Context, email, voterName, applicantName, sequenceNo string) error
	SendOutcome(ctx context.Context, email, applicantName, orgName string, status domain.RequestStatus, reason string) error
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type AuthService interface {
	// Login verifies credentials and returns an access token carrying
	// the caller's role in the given organization.
	Login(ctx context.Context, email, password string, orgID int32) (string, error)
}
