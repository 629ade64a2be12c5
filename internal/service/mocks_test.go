package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"communityhub-backend/internal/approval"
	"communityhub-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) AddUserToOrg(ctx context.Context, userOrg *domain.UserOrg) error {
	args := m.Called(ctx, userOrg)
	return args.Error(0)
}
func (m *MockUserRepo) GetUserOrg(ctx context.Context, userID, orgID int32) (*domain.UserOrg, error) {
	args := m.Called(ctx, userID, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserOrg), args.Error(1)
}
func (m *MockUserRepo) UpdateUserOrg(ctx context.Context, userOrg *domain.UserOrg) error {
	args := m.Called(ctx, userOrg)
	return args.Error(0)
}
func (m *MockUserRepo) ListBoardMembers(ctx context.Context, orgID int32) ([]domain.User, []domain.UserOrg, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.User), args.Get(1).([]domain.UserOrg), args.Error(2)
}

// MockOrganizationRepo
type MockOrganizationRepo struct {
	mock.Mock
}

func (m *MockOrganizationRepo) Create(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}
func (m *MockOrganizationRepo) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) List(ctx context.Context) ([]domain.Organization, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) Update(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.MembershipRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id int32) (*domain.MembershipRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MembershipRequest), args.Error(1)
}
func (m *MockRequestRepo) GetByAccessToken(ctx context.Context, token string) (*domain.MembershipRequest, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MembershipRequest), args.Error(1)
}
func (m *MockRequestRepo) ListByOrg(ctx context.Context, orgID int32, status domain.RequestStatus) ([]domain.MembershipRequest, error) {
	args := m.Called(ctx, orgID, status)
	return args.Get(0).([]domain.MembershipRequest), args.Error(1)
}
func (m *MockRequestRepo) TransitionStatus(ctx context.Context, id int32, from, to domain.RequestStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}
func (m *MockRequestRepo) SetCreatedMemberID(ctx context.Context, id int32, memberID *int32) error {
	args := m.Called(ctx, id, memberID)
	return args.Error(0)
}
func (m *MockRequestRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVoteRepo
type MockVoteRepo struct {
	mock.Mock
}

func (m *MockVoteRepo) Create(ctx context.Context, vote *domain.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}
func (m *MockVoteRepo) ListByRequest(ctx context.Context, requestID int32) ([]domain.Vote, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).([]domain.Vote), args.Error(1)
}

// MockAuditRepo
type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) Append(ctx context.Context, entry *domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockAuditRepo) ListByRequest(ctx context.Context, requestID int32) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}

// MockMemberRepo
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockMemberRepo) GetByID(ctx context.Context, id int32) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) GetByRequestID(ctx context.Context, requestID int32) (*domain.Member, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) ListByOrg(ctx context.Context, orgID int32) ([]domain.Member, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.Member), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockRoster
type MockRoster struct {
	mock.Mock
}

func (m *MockRoster) CurrentEligibleVoters(ctx context.Context, orgID int32, policy domain.ApprovalPolicy) ([]domain.User, error) {
	args := m.Called(ctx, orgID, policy)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockRoster) ResolveKind(ctx context.Context, orgID int32, policy domain.ApprovalPolicy) (approval.Kind, error) {
	args := m.Called(ctx, orgID, policy)
	return args.Get(0).(approval.Kind), args.Error(1)
}

// MockRegistry
type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) CreateMember(ctx context.Context, req *domain.MembershipRequest) (int32, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockRegistry) GetMember(ctx context.Context, id int32) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockRegistry) ListMembers(ctx context.Context, orgID int32) ([]domain.Member, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.Member), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendVoteRequired(ctx context.Context, email, voterName, applicantName, sequenceNo, policyDescription string) error {
	args := m.Called(ctx, email, voterName, applicantName, sequenceNo, policyDescription)
	return args.Error(0)
}
func (m *MockEmailService) SendVoteReminder(ctx context.Context, email, voterName, applicantName, sequenceNo string) error {
	args := m.Called(ctx, email, voterName, applicantName, sequenceNo)
	return args.Error(0)
}
func (m *MockEmailService) SendOutcome(ctx context.Context, email, applicantName, orgName string, status domain.RequestStatus, reason string) error {
	args := m.Called(ctx, email, applicantName, orgName, status, reason)
	return args.Error(0)
}
