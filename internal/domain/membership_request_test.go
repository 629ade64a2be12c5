package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"communityhub-backend/internal/domain"
)

func TestIsTerminal(t *testing.T) {
	terminal := []domain.RequestStatus{
		domain.RequestStatusApproved,
		domain.RequestStatusRejected,
		domain.RequestStatusWithdrawn,
	}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), string(s))
	}

	open := []domain.RequestStatus{
		domain.RequestStatusPending,
		domain.RequestStatusUnderReview,
		domain.RequestStatusInfoRequested,
	}
	for _, s := range open {
		assert.False(t, s.IsTerminal(), string(s))
	}
}

func TestCanTransition(t *testing.T) {
	// Terminal states are absorbing.
	for _, from := range []domain.RequestStatus{
		domain.RequestStatusApproved,
		domain.RequestStatusRejected,
		domain.RequestStatusWithdrawn,
	} {
		assert.False(t, domain.CanTransition(from, domain.RequestStatusPending))
		assert.False(t, domain.CanTransition(from, domain.RequestStatusApproved))
		assert.False(t, domain.CanTransition(from, domain.RequestStatusWithdrawn))
	}

	// Any open state can close, in any of the three terminal ways.
	for _, from := range []domain.RequestStatus{
		domain.RequestStatusPending,
		domain.RequestStatusUnderReview,
		domain.RequestStatusInfoRequested,
	} {
		assert.True(t, domain.CanTransition(from, domain.RequestStatusApproved))
		assert.True(t, domain.CanTransition(from, domain.RequestStatusRejected))
		assert.True(t, domain.CanTransition(from, domain.RequestStatusWithdrawn))
	}

	// Review states move freely among themselves but not to themselves.
	assert.True(t, domain.CanTransition(domain.RequestStatusPending, domain.RequestStatusUnderReview))
	assert.True(t, domain.CanTransition(domain.RequestStatusUnderReview, domain.RequestStatusInfoRequested))
	assert.True(t, domain.CanTransition(domain.RequestStatusInfoRequested, domain.RequestStatusPending))
	assert.False(t, domain.CanTransition(domain.RequestStatusUnderReview, domain.RequestStatusUnderReview))

	// Unknown target statuses are never legal.
	assert.False(t, domain.CanTransition(domain.RequestStatusPending, domain.RequestStatus("ARCHIVED")))
}
