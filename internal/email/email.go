// Package email sends the transactional mail of the directory. All contact
// notifications go through one Notifier; the provider sits behind Sender.
package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/01moynul/bizdirectory-golang/internal/format"
)

var ErrNoRecipients = errors.New("no recipients for notification")

// Message is a provider-neutral email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Sender delivers a Message through an email provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// RecipientPolicy decides who receives a contact notification: the business
// address when it has one, then the admin address when AlwaysCCAdmin is set.
type RecipientPolicy struct {
	AdminAddress  string
	AlwaysCCAdmin bool
}

// Recipients applies the policy to a business address (which may be empty).
func (p RecipientPolicy) Recipients(businessEmail string) []string {
	var to []string
	e := strings.TrimSpace(businessEmail)
	if e != "" {
		to = append(to, e)
	}
	if p.AlwaysCCAdmin && p.AdminAddress != "" && !strings.EqualFold(p.AdminAddress, e) {
		to = append(to, p.AdminAddress)
	}
	return to
}

// ContactEmail is a contact form submission plus the routing context of the
// profile it was sent from.
type ContactEmail struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Message        string
	RecipientName  string
	RecipientEmail string
	Category       string
	BusinessURL    string
	BusinessName   string
}

// Notifier turns directory events into emails.
type Notifier struct {
	sender   Sender
	from     string
	siteName string
	policy   RecipientPolicy
}

func NewNotifier(sender Sender, from, siteName string, policy RecipientPolicy) *Notifier {
	return &Notifier{sender: sender, from: from, siteName: siteName, policy: policy}
}

// NotifyContact emails a contact submission to the business (and admin, per policy).
func (n *Notifier) NotifyContact(ctx context.Context, c ContactEmail) error {
	to := n.policy.Recipients(c.RecipientEmail)
	if len(to) == 0 {
		return ErrNoRecipients
	}

	category := format.DisplayName(c.Category)
	if category == "" {
		category = "General"
	}

	var body bytes.Buffer
	err := contactTemplate.Execute(&body, contactView{
		ContactEmail: c,
		CategoryName: category,
		SiteName:     n.siteName,
	})
	if err != nil {
		return fmt.Errorf("render contact email: %w", err)
	}

	msg := Message{
		From:    n.from,
		To:      to,
		Subject: fmt.Sprintf("[%s] New Message from %s %s - %s - %s", n.siteName, c.FirstName, c.LastName, category, c.RecipientName),
		HTML:    body.String(),
	}
	if err := n.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}
