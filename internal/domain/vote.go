package domain

import "time"

type VoteChoice string

const (
	VoteChoiceApprove VoteChoice = "APPROVE"
	VoteChoiceReject  VoteChoice = "REJECT"
	VoteChoiceAbstain VoteChoice = "ABSTAIN"
)

// Vote is one board member's vote on a membership request. Identity is
// the (RequestID, VoterID) pair; a voter casts at most one vote per
// request and votes are immutable once written.
type Vote struct {
	RequestID int32      `json:"request_id"`
	VoterID   int32      `json:"voter_id"`
	Choice    VoteChoice `json:"choice"`
	Notes     string     `json:"notes"`
	CastOn    time.Time  `json:"cast_on"`
}

// Tally is a point-in-time count of the votes on a request, always
// recomputed from the stored votes rather than kept as counters.
type Tally struct {
	Approvals      int32 `json:"approvals"`
	Rejections     int32 `json:"rejections"`
	Abstentions    int32 `json:"abstentions"`
	Total          int32 `json:"total"`
	EligibleVoters int32 `json:"eligible_voters"`
}
