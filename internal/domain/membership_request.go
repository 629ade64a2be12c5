package domain

type RequestStatus string

const (
	RequestStatusPending        RequestStatus = "PENDING"
	RequestStatusUnderReview    RequestStatus = "UNDER_REVIEW"
	RequestStatusInfoRequested  RequestStatus = "ADDITIONAL_INFO_REQUESTED"
	RequestStatusApproved       RequestStatus = "APPROVED"
	RequestStatusRejected       RequestStatus = "REJECTED"
	RequestStatusWithdrawn      RequestStatus = "WITHDRAWN"
)

// IsTerminal reports whether no further transitions may leave the status.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusApproved, RequestStatusRejected, RequestStatusWithdrawn:
		return true
	}
	return false
}

// CanTransition reports whether from → to is a legal status change.
// Terminal states are absorbing; WITHDRAWN is reachable from any
// non-terminal state; the three review states move freely among
// themselves.
func CanTransition(from, to RequestStatus) bool {
	if from.IsTerminal() {
		return false
	}
	switch to {
	case RequestStatusWithdrawn, RequestStatusApproved, RequestStatusRejected:
		return true
	case RequestStatusPending, RequestStatusUnderReview, RequestStatusInfoRequested:
		return from != to
	}
	return false
}

type ApprovalPolicy string

const (
	ApprovalPolicySingle     ApprovalPolicy = "SINGLE"
	ApprovalPolicyMultiBoard ApprovalPolicy = "MULTI_BOARD"
)

type MembershipRequest struct {
	ID              int32          `json:"id"`
	OrgID           int32          `json:"org_id"`
	SequenceNo      string         `json:"sequence_no"` // immutable once assigned, e.g. MR-2026-0042
	AccessToken     string         `json:"-"`           // lets the applicant check the outcome without an account
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	Address         string         `json:"address"`
	Motivation      string         `json:"motivation"`
	Policy          ApprovalPolicy `json:"policy"`
	Status          RequestStatus  `json:"status"`
	CreatedMemberID *int32         `json:"created_member_id,omitempty"` // non-nil iff Status == APPROVED
	CreatedOn       string         `json:"created_on"`
	DecidedOn       *string        `json:"decided_on,omitempty"`
}
