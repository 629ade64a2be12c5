package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"communityhub-backend/internal/approval"
	"communityhub-backend/internal/domain"
	"communityhub-backend/internal/logger"
	"communityhub-backend/internal/repository"
)

type approvalService struct {
	reqRepo   repository.MembershipRequestRepository
	voteRepo  repository.VoteRepository
	auditRepo repository.AuditRepository
	userRepo  repository.UserRepository
	orgRepo   repository.OrganizationRepository
	noteRepo  repository.NotificationRepository
	roster    BoardRosterProvider
	registry  MemberRegistry
	emailSvc  EmailService
}

func NewApprovalService(
	reqRepo repository.MembershipRequestRepository,
	voteRepo repository.VoteRepository,
	auditRepo repository.AuditRepository,
	userRepo repository.UserRepository,
	orgRepo repository.OrganizationRepository,
	noteRepo repository.NotificationRepository,
	roster BoardRosterProvider,
	registry MemberRegistry,
	emailSvc EmailService,
) ApprovalService {
	return &approvalService{
		reqRepo:   reqRepo,
		voteRepo:  voteRepo,
		auditRepo: auditRepo,
		userRepo:  userRepo,
		orgRepo:   orgRepo,
		noteRepo:  noteRepo,
		roster:    roster,
		registry:  registry,
		emailSvc:  emailSvc,
	}
}

func (s *approvalService) SubmitRequest(ctx context.Context, req *domain.MembershipRequest) error {
	if req.Policy == "" {
		req.Policy = domain.ApprovalPolicyMultiBoard
	}
	kind, err := s.roster.ResolveKind(ctx, req.OrgID, req.Policy)
	if err != nil {
		return err
	}
	voters, err := s.roster.CurrentEligibleVoters(ctx, req.OrgID, req.Policy)
	if err != nil {
		return err
	}
	if len(voters) == 0 {
		return domain.ErrPolicyMisconfigured
	}

	req.Status = domain.RequestStatusPending
	req.AccessToken = uuid.NewString()
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return fmt.Errorf("failed to create membership request: %w", err)
	}

	// The board size at submission time is recorded here for
	// traceability only; evaluations always re-derive the roster.
	policyDesc := approval.Describe(kind, int32(len(voters)))
	_ = s.auditRepo.Append(ctx, &domain.AuditEntry{
		RequestID: req.ID,
		ToStatus:  domain.RequestStatusPending,
		Notes:     "Submitted; approval policy " + policyDesc,
	})

	s.notifyBoard(ctx, req, voters, policyDesc)
	return nil
}

func (s *approvalService) notifyBoard(ctx context.Context, req *domain.MembershipRequest, voters []domain.User, policyDesc string) {
	for _, voter := range voters {
		if err := s.emailSvc.SendVoteRequired(ctx, voter.Email, voter.Name, req.Name, req.SequenceNo, policyDesc); err != nil {
			logger.Warn("Failed to send vote-required email", "request_id", req.ID, "voter_id", voter.ID, "error", err)
			continue
		}
		_ = s.auditRepo.Append(ctx, &domain.AuditEntry{
			RequestID:  req.ID,
			FromStatus: &req.Status,
			ToStatus:   req.Status,
			Notes:      domain.NotificationNote("Vote required", voter.Email, false),
		})
		_ = s.noteRepo.Create(ctx, &domain.Notification{
			UserID:  voter.ID,
			OrgID:   req.OrgID,
			Title:   "Membership vote required",
			Message: fmt.Sprintf("%s applied for membership (%s)", req.Name, req.SequenceNo),
			Attributes: map[string]string{
				"type":       "VOTE_REQUIRED",
				"request_id": fmt.Sprintf("%d", req.ID),
			},
		})
	}
}

func (s *approvalService) GetRequest(ctx context.Context, id int32) (*domain.MembershipRequest, []domain.Vote, *domain.Tally, []domain.AuditEntry, error) {
	req, err := s.reqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	votes, err := s.voteRepo.ListByRequest(ctx, id)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	voters, err := s.roster.CurrentEligibleVoters(ctx, req.OrgID, req.Policy)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	tally := tallyVotes(votes, voters)
	audit, err := s.auditRepo.ListByRequest(ctx, id)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return req, votes, tally, audit, nil
}

func (s *approvalService) GetRequestByAccessToken(ctx context.Context, token string) (*domain.MembershipRequest, error) {
	return s.reqRepo.GetByAccessToken(ctx, token)
}

func (s *approvalService) ListRequests(ctx context.Context, orgID int32, status domain.RequestStatus) ([]domain.MembershipRequest, error) {
	return s.reqRepo.ListByOrg(ctx, orgID, status)
}

// tallyVotes counts only the votes cast by voters still on the
// roster. A vote from a since-removed board member stays in the ledger
// but no longer counts toward the threshold, in either direction.
func tallyVotes(votes []domain.Vote, voters []domain.User) *domain.Tally {
	eligible := make(map[int32]bool, len(voters))
	for _, voter := range voters {
		eligible[voter.ID] = true
	}
	tally := &domain.Tally{EligibleVoters: int32(len(voters))}
	for _, v := range votes {
		if !eligible[v.VoterID] {
			continue
		}
		switch v.Choice {
		case domain.VoteChoiceApprove:
			tally.Approvals++
		case domain.VoteChoiceReject:
			tally.Rejections++
		case domain.VoteChoiceAbstain:
			tally.Abstentions++
		}
		tally.Total++
	}
	return tally
}

func (s *approvalService) CastVote(ctx context.Context, requestID, voterID int32, choice domain.VoteChoice, notes string) (*domain.Vote, approval.Outcome, error) {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, "", err
	}
	if req.Status.IsTerminal() {
		return nil, "", domain.ErrRequestClosed
	}

	voters, err := s.roster.CurrentEligibleVoters(ctx, req.OrgID, req.Policy)
	if err != nil {
		return nil, "", err
	}
	if !containsVoter(voters, voterID) {
		return nil, "", domain.ErrNotEligible
	}

	// The (request_id, voter_id) key in the ledger is the only
	// double-vote guard; a duplicate cast fails here atomically.
	vote := &domain.Vote{RequestID: requestID, VoterID: voterID, Choice: choice, Notes: notes}
	if err := s.voteRepo.Create(ctx, vote); err != nil {
		return nil, "", err
	}

	_ = s.auditRepo.Append(ctx, &domain.AuditEntry{
		RequestID:  requestID,
		FromStatus: &req.Status,
		ToStatus:   req.Status,
		ChangedBy:  &voterID,
		Notes:      domain.VoteNote(choice, notes),
	})

	votes, err := s.voteRepo.ListByRequest(ctx, requestID)
	if err != nil {
		return vote, "", err
	}
	tally := tallyVotes(votes, voters)

	kind, err := s.roster.ResolveKind(ctx, req.OrgID, req.Policy)
	if err != nil {
		return vote, "", err
	}
	outcome, err := approval.Evaluate(kind, *tally)
	if err != nil {
		return vote, "", err
	}

	switch outcome {
	case approval.OutcomeApproved:
		if err := s.approve(ctx, req, fmt.Sprintf("Threshold met: %s", approval.Describe(kind, tally.EligibleVoters)), nil); err != nil {
			return vote, outcome, err
		}
	case approval.OutcomeRejected:
		if err := s.reject(ctx, req, fmt.Sprintf("Threshold unreachable: %s", approval.Describe(kind, tally.EligibleVoters)), nil, ""); err != nil {
			return vote, outcome, err
		}
	}
	return vote, outcome, nil
}

// approve drives the request into APPROVED exactly once. The status
// compare-and-swap decides the winner among concurrent evaluations;
// losers return without side effects. Member creation failure rolls
// the status back so a later vote or override can retry; the votes
// themselves stand.
func (s *approvalService) approve(ctx context.Context, req *domain.MembershipRequest, auditNote string, changedBy *int32) error {
	from := req.Status
	won, err := s.reqRepo.TransitionStatus(ctx, req.ID, from, domain.RequestStatusApproved)
	if err != nil {
		return fmt.Errorf("failed to transition request: %w", err)
	}
	if !won {
		logger.Debug("Lost approval transition race, skipping side effects", "request_id", req.ID)
		return nil
	}

	memberID, err := s.registry.CreateMember(ctx, req)
	if err != nil {
		if _, rbErr := s.reqRepo.TransitionStatus(ctx, req.ID, domain.RequestStatusApproved, from); rbErr != nil {
			logger.Error("Failed to roll back approval transition", "request_id", req.ID, "error", rbErr)
		}
		return fmt.Errorf("%w: %v", domain.ErrMemberCreationFailed, err)
	}
	if err := s.reqRepo.SetCreatedMemberID(ctx, req.ID, &memberID); err != nil {
		// An APPROVED request must carry its member id; back out and
		// let a retry re-win the swap. CreateMember is idempotent per
		// request, so the retry reuses the member made here.
		if _, rbErr := s.reqRepo.TransitionStatus(ctx, req.ID, domain.RequestStatusApproved, from); rbErr != nil {
			logger.Error("Failed to roll back approval transition", "request_id", req.ID, "error", rbErr)
		}
		return fmt.Errorf("%w: %v", domain.ErrMemberCreationFailed, err)
	}
	req.Status = domain.RequestStatusApproved
	req.CreatedMemberID = &memberID

	_ = s.auditRepo.Append(ctx, &domain.AuditEntry{
		RequestID:  req.ID,
		FromStatus: &from,
		ToStatus:   domain.RequestStatusApproved,
		ChangedBy:  changedBy,
		Notes:      auditNote,
	})

	s.notifyApplicant(ctx, req, domain.RequestStatusApproved, "")
	return nil
}

func (s *approvalService) reject(ctx context.Context, req *domain.MembershipRequest, auditNote string, changedBy *int32, reason string) error {
	from := req.Status
	won, err := s.reqRepo.TransitionStatus(ctx, req.ID, from, domain.RequestStatusRejected)
	if err != nil {
		return fmt.Errorf("failed to transition request: %w", err)
	}
	if !won {
		logger.Debug("Lost rejection transition race, skipping side effects", "request_id", req.ID)
		return nil
	}
	req.Status = domain.RequestStatusRejected

	_ = s.auditRepo.Append(ctx, &domain.AuditEntry{
		RequestID:  req.ID,
		FromStatus: &from,
		ToStatus:   domain.RequestStatusRejected,
		ChangedBy:  changedBy,
		Notes:      auditNote,
	})

	s.notifyApplicant(ctx, req, domain.RequestStatusRejected, reason)
	return nil
}

// notifyApplicant emails the outcome; failures are logged, never
// propagated, and never undo the transition.
func (s *approvalService) notifyApplicant(ctx context.Context, req *domain.MembershipRequest, status domain.RequestStatus, reason string) {
	orgName := ""
	if org, err := s.orgRepo.GetByID(ctx, req.OrgID); err == nil {
		orgName = org.Name
	}
	if err := s.emailSvc.SendOutcome(ctx, req.Email, req.Name, orgName, status, reason); err != nil {
		logger.Warn("Failed to send outcome email", "request_id", req.ID, "error", err)
		return
	}
	_ = s.auditRepo.Append(ctx, &domain.AuditEntry{
		RequestID:  req.ID,
		FromStatus: &status,
		ToStatus:   status,
		Notes:      domain.NotificationNote("Outcome", req.Email, false),
	})
}

func (s *approvalService) PendingVoters(ctx context.Context, requestID int32) ([]domain.User, error) {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	voters, err := s.roster.CurrentEligibleVoters(ctx, req.OrgID, req.Policy)
	if err != nil {
		return nil, err
	}
	votes, err := s.voteRepo.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	voted := make(map[int32]bool, len(votes))
	for _, v := range votes {
		voted[v.VoterID] = true
	}
	var pending []domain.User
	for _, voter := range voters {
		if !voted[voter.ID] {
			pending = append(pending, voter)
		}
	}
	return pending, nil
}

// OverrideApprove decides a request outside the voting process. It is
// only legal while voting has not concluded, and its audit entry stays
// distinguishable from quorum-driven approvals.
func (s *approvalService) OverrideApprove(ctx context.Context, requestID, adminID int32, notes string) error {
	req, err := s.overridableRequest(ctx, requestID, adminID)
	if err != nil {
		return err
	}
	return s.approve(ctx, req, domain.OverrideNote(domain.RequestStatusApproved, notes), &adminID)
}

func (s *approvalService) OverrideReject(ctx context.Context, requestID, adminID int32, reason string) error {
	req, err := s.overridableRequest(ctx, requestID, adminID)
	if err != nil {
		return err
	}
	return s.reject(ctx, req, domain.OverrideNote(domain.RequestStatusRejected, reason), &adminID, reason)
}

func (s *approvalService) overridableRequest(ctx context.Context, requestID, adminID int32) (*domain.MembershipRequest, error) {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status.IsTerminal() {
		return nil, domain.ErrRequestClosed
	}
	if req.Status != domain.RequestStatusPending && req.Status != domain.RequestStatusUnderReview {
		return nil, domain.ErrInvalidTransition
	}
	uo, err := s.userRepo.GetUserOrg(ctx, adminID, req.OrgID)
	if err != nil {
		return nil, domain.ErrNotEligible
	}
	if uo.Role != domain.UserOrgRoleAdmin {
		return nil, domain.ErrNotEligible
	}
	return req, nil
}

// UpdateStatus handles manual reviewer edits among the non-terminal
// states. It never consults the threshold policy.
func (s *approvalService) UpdateStatus(ctx context.Context, requestID, reviewerID int32, to domain.RequestStatus, notes string) error {
	if to.IsTerminal() {
		return domain.ErrInvalidTransition
	}
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Status.IsTerminal() {
		return domain.ErrRequestClosed
	}
	if !domain.CanTransition(req.Status, to) {
		return domain.ErrInvalidTransition
	}
	won, err := s.reqRepo.TransitionStatus(ctx, requestID, req.Status, to)
	if err != nil {
		return err
	}
	if !won {
		return domain.ErrInvalidTransition
	}
	_ = s.auditRepo.Append(ctx, &domain.AuditEntry{
		RequestID:  requestID,
		FromStatus: &req.Status,
		ToStatus:   to,
		ChangedBy:  &reviewerID,
		Notes:      notes,
	})
	return nil
}

func (s *approvalService) Withdraw(ctx context.Context, accessToken string) error {
	req, err := s.reqRepo.GetByAccessToken(ctx, accessToken)
	if err != nil {
		return err
	}
	if req.Status.IsTerminal() {
		return domain.ErrRequestClosed
	}
	won, err := s.reqRepo.TransitionStatus(ctx, req.ID, req.Status, domain.RequestStatusWithdrawn)
	if err != nil {
		return err
	}
	if !won {
		return domain.ErrRequestClosed
	}
	_ = s.auditRepo.Append(ctx, &domain.AuditEntry{
		RequestID:  req.ID,
		FromStatus: &req.Status,
		ToStatus:   domain.RequestStatusWithdrawn,
		Notes:      "Withdrawn by applicant",
	})
	return nil
}

func (s *approvalService) DeleteRequest(ctx context.Context, requestID int32) error {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.CreatedMemberID != nil {
		return domain.ErrDeleteBlocked
	}
	return s.reqRepo.Delete(ctx, requestID)
}

func containsVoter(voters []domain.User, voterID int32) bool {
	for _, v := range voters {
		if v.ID == voterID {
			return true
		}
	}
	return false
}
