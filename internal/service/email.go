package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"communityhub-backend/internal/domain"
	"communityhub-backend/internal/logger"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) send(to, toName, subject, body string) error {
	logger.ExternalServiceCall("sendgrid", "Send", "to", to, "subject", subject)

	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.ExternalServiceResult("sendgrid", "Send", err, "to", to)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendVoteRequired(ctx context.Context, email, voterName, applicantName, sequenceNo, policyDescription string) error {
	subject := fmt.Sprintf("Membership vote required - %s", sequenceNo)
	body := fmt.Sprintf(
		"Hello %s,\n\n%s has applied for membership (request %s).\n\nYour vote is required. The request is decided by policy %s.\n\nPlease log in to cast your vote.",
		voterName, applicantName, sequenceNo, policyDescription)
	return s.send(email, voterName, subject, body)
}

func (s *emailService) SendVoteReminder(ctx context.Context, email, voterName, applicantName, sequenceNo string) error {
	subject := fmt.Sprintf("Reminder: membership vote outstanding - %s", sequenceNo)
	body := fmt.Sprintf(
		"Hello %s,\n\nThe membership request %s from %s is still waiting for your vote.\n\nPlease log in to cast your vote.",
		voterName, sequenceNo, applicantName)
	return s.send(email, voterName, subject, body)
}

func (s *emailService) SendOutcome(ctx context.Context, email, applicantName, orgName string, status domain.RequestStatus, reason string) error {
	var subject, body string
	switch status {
	case domain.RequestStatusApproved:
		subject = fmt.Sprintf("Welcome to %s", orgName)
		body = fmt.Sprintf("Hello %s,\n\nYour membership request for %s has been approved. Welcome!", applicantName, orgName)
	case domain.RequestStatusRejected:
		subject = fmt.Sprintf("Your membership request - %s", orgName)
		body = fmt.Sprintf("Hello %s,\n\nYour membership request for %s was not approved.", applicantName, orgName)
		if reason != "" {
			body += fmt.Sprintf("\n\nReason: %s", reason)
		}
	default:
		return fmt.Errorf("no outcome email for status %s", status)
	}
	return s.send(email, applicantName, subject, body)
}
