// Package approval holds the threshold policy evaluator for membership
// requests. Evaluation is a pure function of the policy kind and the
// current tally; it never looks at vote order or causes side effects.
package approval

import (
	"fmt"

	"communityhub-backend/internal/domain"
)

// Kind is the closed set of threshold policies a board can use.
type Kind string

const (
	KindUnanimous      Kind = "UNANIMOUS"
	KindMajority       Kind = "MAJORITY"
	KindSimpleMajority Kind = "SIMPLE_MAJORITY"
	KindAnyTwo         Kind = "ANY_TWO"
	KindSingle         Kind = "SINGLE"
)

// ParseKind validates a stored or configured policy kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindUnanimous, KindMajority, KindSimpleMajority, KindAnyTwo, KindSingle:
		return Kind(s), nil
	}
	return "", domain.ErrPolicyMisconfigured
}

type Outcome string

const (
	OutcomePending  Outcome = "PENDING"
	OutcomeApproved Outcome = "APPROVED"
	OutcomeRejected Outcome = "REJECTED"
)

// Evaluate decides a request from its current tally.
//
// A request is rejected as soon as the approval condition becomes
// mathematically unreachable, even with votes outstanding: cast
// abstentions and rejections are spent, so the best case is that every
// voter who has not voted yet approves. UNANIMOUS is the exception:
// it rejects only on an explicit rejection, so an abstention leaves it
// pending until the roster changes (eligible voters are re-derived
// live on every evaluation).
func Evaluate(kind Kind, t domain.Tally) (Outcome, error) {
	if t.EligibleVoters <= 0 {
		return OutcomePending, domain.ErrPolicyMisconfigured
	}

	n := t.EligibleVoters
	a := t.Approvals
	remaining := n - t.Total
	if remaining < 0 {
		// More recorded votes than current eligible voters: the board
		// shrank after some votes were cast. Those votes no longer count
		// toward the best case.
		remaining = 0
	}
	maxApprovals := a + remaining

	switch kind {
	case KindUnanimous:
		if t.Rejections >= 1 {
			return OutcomeRejected, nil
		}
		if a == n {
			return OutcomeApproved, nil
		}
	case KindMajority:
		if 2*a > n {
			return OutcomeApproved, nil
		}
		if 2*maxApprovals <= n {
			return OutcomeRejected, nil
		}
	case KindSimpleMajority:
		if 2*a >= n {
			return OutcomeApproved, nil
		}
		if 2*maxApprovals < n {
			return OutcomeRejected, nil
		}
	case KindAnyTwo:
		if a >= 2 {
			return OutcomeApproved, nil
		}
		if maxApprovals < 2 {
			return OutcomeRejected, nil
		}
	case KindSingle:
		if a >= 1 {
			return OutcomeApproved, nil
		}
		if maxApprovals < 1 {
			return OutcomeRejected, nil
		}
	default:
		return OutcomePending, domain.ErrPolicyMisconfigured
	}

	return OutcomePending, nil
}

// Describe renders a policy for notification text and the initial audit
// entry, e.g. "MAJORITY (5 eligible voters)".
func Describe(kind Kind, eligibleVoters int32) string {
	return fmt.Sprintf("%s (%d eligible voters)", kind, eligibleVoters)
}
