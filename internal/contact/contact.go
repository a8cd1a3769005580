// Package contact stores inbound contact and lead submissions and notifies
// the recipient business.
package contact

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/01moynul/bizdirectory-golang/internal/email"
	"github.com/01moynul/bizdirectory-golang/internal/models"
)

var (
	ErrStoreFailed = errors.New("failed to store submission")
	ErrEmailFailed = errors.New("failed to send notification")
)

// Store persists submissions.
type Store interface {
	InsertContactSubmission(ctx context.Context, sub *models.ContactSubmission) error
	InsertLead(ctx context.Context, lead *models.BusinessLead) error
}

// Notifier emails the business about a stored submission.
type Notifier interface {
	NotifyContact(ctx context.Context, c email.ContactEmail) error
}

// Submission is a contact form message with the routing context of the
// profile it was sent from. The recipient is resolved by the caller.
type Submission struct {
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

// Confirmation is returned to the sender after a successful submission.
type Confirmation struct {
	RecipientName string `json:"recipientName"`
	FirstName     string `json:"firstName"`
}

// Lead is a "List Your Business" request.
type Lead struct {
	Name         string
	Email        string
	Phone        string
	BusinessType string
	Message      string
}

type Service struct {
	store    Store
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(s Store, n Notifier, logger *zap.Logger) *Service {
	return &Service{store: s, notifier: n, logger: logger, now: time.Now}
}

// Submit stores the submission, then notifies the business. A store failure
// returns ErrStoreFailed without notifying. A notification failure returns
// ErrEmailFailed; the stored record is kept.
func (s *Service) Submit(ctx context.Context, sub Submission) (Confirmation, error) {
	// 1. --- Persist ---
	record := &models.ContactSubmission{
		FirstName:     sub.FirstName,
		LastName:      sub.LastName,
		Email:         sub.Email,
		Phone:         sub.Phone,
		Message:       sub.Message,
		RecipientName: sub.RecipientName,
		Category:      sub.Category,
		BusinessURL:   sub.BusinessURL,
		BusinessName:  sub.BusinessName,
		CreatedAt:     s.now().UTC(),
	}
	if sub.RecipientEmail != "" {
		recipient := sub.RecipientEmail
		record.RecipientEmail = &recipient
	}

	if err := s.store.InsertContactSubmission(ctx, record); err != nil {
		s.logger.Error("store contact submission", zap.Error(err))
		return Confirmation{}, errors.Join(ErrStoreFailed, err)
	}

	// 2. --- Notify ---
	err := s.notifier.NotifyContact(ctx, email.ContactEmail{
		FirstName:      sub.FirstName,
		LastName:       sub.LastName,
		Email:          sub.Email,
		Phone:          sub.Phone,
		Message:        sub.Message,
		RecipientName:  sub.RecipientName,
		RecipientEmail: sub.RecipientEmail,
		Category:       sub.Category,
		BusinessURL:    sub.BusinessURL,
		BusinessName:   sub.BusinessName,
	})
	if err != nil {
		s.logger.Error("notify contact submission",
			zap.Int64("submissionId", record.ID),
			zap.Error(err))
		return Confirmation{}, errors.Join(ErrEmailFailed, err)
	}

	s.logger.Info("contact submission delivered",
		zap.Int64("submissionId", record.ID),
		zap.String("recipient", sub.RecipientName))

	return Confirmation{RecipientName: sub.RecipientName, FirstName: sub.FirstName}, nil
}

// SubmitLead stores a lead. No email is sent for leads.
func (s *Service) SubmitLead(ctx context.Context, lead Lead) error {
	record := &models.BusinessLead{
		Name:         lead.Name,
		Email:        lead.Email,
		Phone:        lead.Phone,
		BusinessType: lead.BusinessType,
		Message:      lead.Message,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.store.InsertLead(ctx, record); err != nil {
		s.logger.Error("store business lead", zap.Error(err))
		return errors.Join(ErrStoreFailed, err)
	}
	s.logger.Info("business lead stored", zap.Int64("leadId", record.ID))
	return nil
}
