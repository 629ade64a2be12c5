package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"communityhub-backend/internal/domain"
)

func TestVoteNoteRoundTrip(t *testing.T) {
	cases := []struct {
		choice domain.VoteChoice
		notes  string
		want   string
	}{
		{domain.VoteChoiceApprove, "", "Board vote: APPROVE"},
		{domain.VoteChoiceReject, "missing references", "Board vote: REJECT - missing references"},
		{domain.VoteChoiceAbstain, "conflict of interest - recusing", "Board vote: ABSTAIN - conflict of interest - recusing"},
	}
	for _, tc := range cases {
		note := domain.VoteNote(tc.choice, tc.notes)
		assert.Equal(t, tc.want, note)

		choice, notes, ok := domain.ParseVoteNote(note)
		assert.True(t, ok)
		assert.Equal(t, tc.choice, choice)
		assert.Equal(t, tc.notes, notes)
	}
}

func TestParseVoteNoteRejectsOtherEntries(t *testing.T) {
	for _, note := range []string{
		"Admin override: APPROVED - verified in person",
		"Outcome email sent to jan@example.org",
		"Board vote: MAYBE",
		"",
	} {
		_, _, ok := domain.ParseVoteNote(note)
		assert.False(t, ok, note)
	}
}

func TestOverrideNote(t *testing.T) {
	note := domain.OverrideNote(domain.RequestStatusApproved, "verified in person")
	assert.Equal(t, "Admin override: APPROVED - verified in person", note)
	assert.True(t, domain.IsOverrideNote(note))

	// Quorum-driven outcomes must not read as overrides.
	assert.False(t, domain.IsOverrideNote("Threshold met: MAJORITY (5 eligible voters)"))
	assert.False(t, domain.IsOverrideNote(domain.VoteNote(domain.VoteChoiceApprove, "")))
}

func TestNotificationNote(t *testing.T) {
	sent := domain.NotificationNote("Outcome", "jan@example.org", false)
	assert.Equal(t, "Outcome email sent to jan@example.org", sent)
	assert.True(t, domain.IsNotificationNote(sent))

	resent := domain.NotificationNote("Vote required", "board@example.org", true)
	assert.Equal(t, "Vote required email resent to board@example.org", resent)
	assert.True(t, domain.IsNotificationNote(resent))

	assert.False(t, domain.IsNotificationNote("Board vote: APPROVE"))
	assert.False(t, domain.IsNotificationNote("Admin override: REJECTED"))
}
