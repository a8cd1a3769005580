package store

import (
	"context"
	"fmt"

	"github.com/01moynul/bizdirectory-golang/internal/models"
)

// InsertContactSubmission records a contact form submission and sets its ID.
func (s *Store) InsertContactSubmission(ctx context.Context, sub *models.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions
		(first_name, last_name, email, phone, message, recipient_name, recipient_email,
		 category, business_url, business_name, created_at)
		VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	args := []interface{}{
		sub.FirstName,
		sub.LastName,
		sub.Email,
		sub.Phone,
		sub.Message,
		sub.RecipientName,
		sub.RecipientEmail,
		sub.Category,
		sub.BusinessURL,
		sub.BusinessName,
		sub.CreatedAt,
	}

	result, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	if id, err := result.LastInsertId(); err == nil {
		sub.ID = id
	}
	return nil
}

// InsertLead records a "List Your Business" request and sets its ID.
func (s *Store) InsertLead(ctx context.Context, lead *models.BusinessLead) error {
	query := `
		INSERT INTO business_leads
		(name, email, phone, business_type, message, created_at)
		VALUES
		(?, ?, ?, ?, ?, ?)`

	result, err := s.DB.ExecContext(ctx, query,
		lead.Name, lead.Email, lead.Phone, lead.BusinessType, lead.Message, lead.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert business lead: %w", err)
	}
	if id, err := result.LastInsertId(); err == nil {
		lead.ID = id
	}
	return nil
}
