package jobs

import (
	"context"
	"time"

	"communityhub-backend/internal/domain"
	"communityhub-backend/internal/logger"
)

// SendVoteReminders emails every board member who has not voted on a
// request that has been pending longer than the configured age. Each
// reminder is recorded in the request's audit trail with the "resent"
// wording so timeline views can tell it from the initial notification.
func (jr *JobRunner) SendVoteReminders() {
	jr.runWithRecovery("SendVoteReminders", func() {
		ctx := context.Background()
		cutoff := time.Now().AddDate(0, 0, -jr.config.Approval.ReminderAfterDays)

		query := `
			SELECT id, org_id, sequence_no, name, status, created_on
			FROM membership_requests
			WHERE status IN ('PENDING', 'UNDER_REVIEW')
			  AND created_on < $1
		`
		rows, err := jr.db.QueryContext(ctx, query, cutoff)
		if err != nil {
			logger.Error("Failed to query stale membership requests", "error", err)
			return
		}
		defer rows.Close()

		var stale []domain.MembershipRequest
		for rows.Next() {
			var req domain.MembershipRequest
			if err := rows.Scan(&req.ID, &req.OrgID, &req.SequenceNo, &req.Name, &req.Status, &req.CreatedOn); err != nil {
				logger.Error("Failed to scan membership request", "error", err)
				continue
			}
			stale = append(stale, req)
		}

		count := 0
		for _, req := range stale {
			pending, err := jr.services.Approval.PendingVoters(ctx, req.ID)
			if err != nil {
				logger.Error("Failed to resolve pending voters", "request_id", req.ID, "error", err)
				continue
			}
			for _, voter := range pending {
				if err := jr.services.Email.SendVoteReminder(ctx, voter.Email, voter.Name, req.Name, req.SequenceNo); err != nil {
					logger.Warn("Failed to send vote reminder", "request_id", req.ID, "voter_id", voter.ID, "error", err)
					continue
				}
				_ = jr.store.AuditRepository.Append(ctx, &domain.AuditEntry{
					RequestID:  req.ID,
					FromStatus: &req.Status,
					ToStatus:   req.Status,
					Notes:      domain.NotificationNote("Vote required", voter.Email, true),
				})
				count++
			}
		}
		logger.Info("Vote reminders sent", "count", count, "stale_requests", len(stale))
	})
}
