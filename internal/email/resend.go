package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// resendEmails is the part of the Resend client used here.
type resendEmails interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendSender delivers mail through the Resend API.
type ResendSender struct {
	emails resendEmails
}

func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{emails: resend.NewClient(apiKey).Emails}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if _, err := s.emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}
