package domain

import (
	"fmt"
	"strings"
	"time"
)

// AuditEntry is one row of a request's append-only history. FromStatus
// is nil only for the synthetic "submitted" entry; ChangedBy is nil for
// system-triggered transitions.
type AuditEntry struct {
	ID         int32          `json:"id"`
	RequestID  int32          `json:"request_id"`
	FromStatus *RequestStatus `json:"from_status,omitempty"`
	ToStatus   RequestStatus  `json:"to_status"`
	ChangedAt  time.Time      `json:"changed_at"`
	ChangedBy  *int32         `json:"changed_by,omitempty"`
	Notes      string         `json:"notes"`
}

// Timeline consumers classify entries by their note text, so the
// encodings below are built and parsed only here.

const (
	voteNotePrefix     = "Board vote: "
	overrideNotePrefix = "Admin override: "
)

// VoteNote encodes a cast vote for the audit trail.
func VoteNote(choice VoteChoice, notes string) string {
	if notes == "" {
		return voteNotePrefix + string(choice)
	}
	return voteNotePrefix + string(choice) + " - " + notes
}

// ParseVoteNote decodes a note written by VoteNote. ok is false when
// the note is not a vote entry.
func ParseVoteNote(note string) (choice VoteChoice, notes string, ok bool) {
	rest, found := strings.CutPrefix(note, voteNotePrefix)
	if !found {
		return "", "", false
	}
	token, notes, _ := strings.Cut(rest, " - ")
	switch VoteChoice(token) {
	case VoteChoiceApprove, VoteChoiceReject, VoteChoiceAbstain:
		return VoteChoice(token), notes, true
	}
	return "", "", false
}

// OverrideNote encodes an admin override decision. Overrides must stay
// textually distinguishable from quorum-driven outcomes.
func OverrideNote(status RequestStatus, reason string) string {
	if reason == "" {
		return overrideNotePrefix + string(status)
	}
	return overrideNotePrefix + string(status) + " - " + reason
}

// IsOverrideNote reports whether the entry records an admin override.
func IsOverrideNote(note string) bool {
	return strings.HasPrefix(note, overrideNotePrefix)
}

// NotificationNote encodes an email event, e.g.
// "Outcome email sent to jan@example.org".
func NotificationNote(action, recipient string, resent bool) string {
	verb := "sent"
	if resent {
		verb = "resent"
	}
	return fmt.Sprintf("%s email %s to %s", action, verb, recipient)
}

// IsNotificationNote reports whether the entry records an email event.
func IsNotificationNote(note string) bool {
	before, _, found := strings.Cut(note, " to ")
	if !found {
		return false
	}
	return strings.HasSuffix(before, " email sent") || strings.HasSuffix(before, " email resent")
}
