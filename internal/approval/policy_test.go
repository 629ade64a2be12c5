package approval_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"communityhub-backend/internal/approval"
	"communityhub-backend/internal/domain"
)

func tally(n, a, r, abst int32) domain.Tally {
	return domain.Tally{
		Approvals:      a,
		Rejections:     r,
		Abstentions:    abst,
		Total:          a + r + abst,
		EligibleVoters: n,
	}
}

func TestEvaluate_DecisionTable(t *testing.T) {
	cases := []struct {
		name string
		kind approval.Kind
		t    domain.Tally
		want approval.Outcome
	}{
		{"unanimous all approve", approval.KindUnanimous, tally(3, 3, 0, 0), approval.OutcomeApproved},
		{"unanimous one reject", approval.KindUnanimous, tally(3, 2, 1, 0), approval.OutcomeRejected},
		{"unanimous immediate reject", approval.KindUnanimous, tally(5, 0, 1, 0), approval.OutcomeRejected},
		{"unanimous partial", approval.KindUnanimous, tally(3, 2, 0, 0), approval.OutcomePending},
		{"unanimous abstention stalls", approval.KindUnanimous, tally(3, 2, 0, 1), approval.OutcomePending},

		{"majority reached", approval.KindMajority, tally(5, 3, 0, 0), approval.OutcomeApproved},
		{"majority not yet", approval.KindMajority, tally(5, 2, 1, 0), approval.OutcomePending},
		{"majority exact half is not enough", approval.KindMajority, tally(4, 2, 0, 2), approval.OutcomeRejected},
		{"majority even n approved", approval.KindMajority, tally(4, 3, 0, 0), approval.OutcomeApproved},

		{"simple majority exact half", approval.KindSimpleMajority, tally(4, 2, 0, 0), approval.OutcomeApproved},
		{"simple majority odd n", approval.KindSimpleMajority, tally(5, 3, 0, 0), approval.OutcomeApproved},
		{"simple majority ceil", approval.KindSimpleMajority, tally(5, 2, 0, 0), approval.OutcomePending},
		{"simple majority unreachable", approval.KindSimpleMajority, tally(5, 1, 3, 1), approval.OutcomeRejected},

		{"any two reached", approval.KindAnyTwo, tally(4, 2, 0, 0), approval.OutcomeApproved},
		{"any two one approval", approval.KindAnyTwo, tally(4, 1, 2, 0), approval.OutcomePending},
		{"any two unreachable", approval.KindAnyTwo, tally(4, 0, 3, 0), approval.OutcomeRejected},

		{"single approve", approval.KindSingle, tally(1, 1, 0, 0), approval.OutcomeApproved},
		{"single reject", approval.KindSingle, tally(1, 0, 1, 0), approval.OutcomeRejected},
		{"single abstain cannot approve", approval.KindSingle, tally(1, 0, 0, 1), approval.OutcomeRejected},
		{"single no votes", approval.KindSingle, tally(1, 0, 0, 0), approval.OutcomePending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := approval.Evaluate(tc.kind, tc.t)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// A request is rejected as soon as approval becomes unreachable, even
// with votes outstanding.
func TestEvaluate_EarlyRejection(t *testing.T) {
	// MAJORITY n=5: three rejections leave only two possible approvals,
	// which can never exceed n/2.
	got, err := approval.Evaluate(approval.KindMajority, tally(5, 0, 3, 0))
	assert.NoError(t, err)
	assert.Equal(t, approval.OutcomeRejected, got)

	// ANY_TWO n=4: three rejections leave one possible approval.
	got, err = approval.Evaluate(approval.KindAnyTwo, tally(4, 0, 3, 0))
	assert.NoError(t, err)
	assert.Equal(t, approval.OutcomeRejected, got)
}

// The evaluator only ever sees a tally, so the outcome for a fixed set
// of votes cannot depend on the order they arrived in. This drives a
// vote set through random orders and checks the outcome after the last
// vote is identical each time.
func TestEvaluate_OrderInvariance(t *testing.T) {
	votes := []domain.VoteChoice{
		domain.VoteChoiceApprove,
		domain.VoteChoiceReject,
		domain.VoteChoiceApprove,
		domain.VoteChoiceAbstain,
		domain.VoteChoiceApprove,
	}
	rng := rand.New(rand.NewSource(1))

	var first approval.Outcome
	for i := 0; i < 50; i++ {
		shuffled := append([]domain.VoteChoice(nil), votes...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		var t5 domain.Tally
		t5.EligibleVoters = int32(len(votes))
		for _, c := range shuffled {
			switch c {
			case domain.VoteChoiceApprove:
				t5.Approvals++
			case domain.VoteChoiceReject:
				t5.Rejections++
			case domain.VoteChoiceAbstain:
				t5.Abstentions++
			}
			t5.Total++
		}

		got, err := approval.Evaluate(approval.KindMajority, t5)
		assert.NoError(t, err)
		if i == 0 {
			first = got
		} else {
			assert.Equal(t, first, got)
		}
	}
	assert.Equal(t, approval.OutcomeApproved, first)
}

func TestEvaluate_Misconfigured(t *testing.T) {
	_, err := approval.Evaluate(approval.KindMajority, tally(0, 0, 0, 0))
	assert.ErrorIs(t, err, domain.ErrPolicyMisconfigured)

	_, err = approval.Evaluate(approval.Kind("PLURALITY"), tally(3, 0, 0, 0))
	assert.ErrorIs(t, err, domain.ErrPolicyMisconfigured)
}

// The board can shrink after votes were cast; recorded votes beyond
// the current roster must not count toward the best case.
func TestEvaluate_ShrunkenRoster(t *testing.T) {
	// 4 votes recorded but only 3 voters remain eligible.
	got, err := approval.Evaluate(approval.KindUnanimous, domain.Tally{
		Approvals: 3, Abstentions: 1, Total: 4, EligibleVoters: 3,
	})
	assert.NoError(t, err)
	assert.Equal(t, approval.OutcomeApproved, got)
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"UNANIMOUS", "MAJORITY", "SIMPLE_MAJORITY", "ANY_TWO", "SINGLE"} {
		kind, err := approval.ParseKind(s)
		assert.NoError(t, err)
		assert.Equal(t, approval.Kind(s), kind)
	}
	_, err := approval.ParseKind("CONSENSUS")
	assert.ErrorIs(t, err, domain.ErrPolicyMisconfigured)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "MAJORITY (5 eligible voters)", approval.Describe(approval.KindMajority, 5))
}
