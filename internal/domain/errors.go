package domain

import "errors"

var (
	// ErrAlreadyVoted means the (request, voter) pair already has a vote.
	// Re-voting is not supported; the original vote stands.
	ErrAlreadyVoted = errors.New("voter has already voted on this request")

	// ErrNotEligible means the voter is not in the request's current
	// eligible-voter set.
	ErrNotEligible = errors.New("voter is not eligible to vote on this request")

	// ErrRequestClosed means the request is in a terminal status and
	// accepts no further votes, overrides, or status edits.
	ErrRequestClosed = errors.New("membership request is closed")

	// ErrPolicyMisconfigured means the threshold kind is unknown or the
	// eligible-voter set is empty.
	ErrPolicyMisconfigured = errors.New("approval policy is misconfigured")

	// ErrMemberCreationFailed wraps a member-registry failure during an
	// approval transition; the transition is rolled back, the vote stands.
	ErrMemberCreationFailed = errors.New("member creation failed")

	// ErrDeleteBlocked means the request already produced a member and
	// must not be deleted.
	ErrDeleteBlocked = errors.New("request has a created member and cannot be deleted")

	// ErrInvalidTransition means the requested status change is not legal
	// from the current status.
	ErrInvalidTransition = errors.New("illegal status transition")

	ErrNotFound = errors.New("not found")
)
