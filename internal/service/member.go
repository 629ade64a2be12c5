package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"communityhub-backend/internal/domain"
	"communityhub-backend/internal/repository"
)

type memberRegistry struct {
	memberRepo repository.MemberRepository
}

func NewMemberRegistry(memberRepo repository.MemberRepository) MemberRegistry {
	return &memberRegistry{memberRepo: memberRepo}
}

// CreateMember copies the applicant payload into the registry. If a
// member already exists for the request it is returned instead, so a
// retried approval never creates a second member.
func (s *memberRegistry) CreateMember(ctx context.Context, req *domain.MembershipRequest) (int32, error) {
	existing, err := s.memberRepo.GetByRequestID(ctx, req.ID)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return 0, err
	}

	member := &domain.Member{
		OrgID:     req.OrgID,
		RequestID: req.ID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		JoinedOn:  time.Now().Format("2006-01-02"),
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return 0, fmt.Errorf("failed to create member: %w", err)
	}
	return member.ID, nil
}

func (s *memberRegistry) GetMember(ctx context.Context, id int32) (*domain.Member, error) {
	return s.memberRepo.GetByID(ctx, id)
}

func (s *memberRegistry) ListMembers(ctx context.Context, orgID int32) ([]domain.Member, error) {
	return s.memberRepo.ListByOrg(ctx, orgID)
}
