package service

import (
	"context"
	"fmt"

	"communityhub-backend/internal/approval"
	"communityhub-backend/internal/domain"
	"communityhub-backend/internal/repository"
)

type boardRoster struct {
	userRepo    repository.UserRepository
	orgRepo     repository.OrganizationRepository
	defaultKind approval.Kind
}

// NewBoardRoster builds the live roster provider. defaultBoardPolicy is
// the configured fallback threshold kind for organizations that have
// not set one.
func NewBoardRoster(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository, defaultBoardPolicy string) (BoardRosterProvider, error) {
	kind, err := approval.ParseKind(defaultBoardPolicy)
	if err != nil {
		return nil, fmt.Errorf("default board policy: %w", err)
	}
	return &boardRoster{userRepo: userRepo, orgRepo: orgRepo, defaultKind: kind}, nil
}

// CurrentEligibleVoters queries the board roster fresh each call. Under
// SINGLE policy the designated approver is the organization's first
// admin; under MULTI_BOARD every active admin and board member votes.
func (b *boardRoster) CurrentEligibleVoters(ctx context.Context, orgID int32, policy domain.ApprovalPolicy) ([]domain.User, error) {
	users, uos, err := b.userRepo.ListBoardMembers(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if policy == domain.ApprovalPolicySingle {
		for i, uo := range uos {
			if uo.Role == domain.UserOrgRoleAdmin {
				return users[i : i+1], nil
			}
		}
		return nil, nil
	}
	return users, nil
}

func (b *boardRoster) ResolveKind(ctx context.Context, orgID int32, policy domain.ApprovalPolicy) (approval.Kind, error) {
	if policy == domain.ApprovalPolicySingle {
		return approval.KindSingle, nil
	}
	org, err := b.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return "", err
	}
	if org.BoardPolicy == "" {
		return b.defaultKind, nil
	}
	return approval.ParseKind(org.BoardPolicy)
}
