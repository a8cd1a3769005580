package models

import "time"

// ContactSubmission is a row of 'contact_submissions'.
type ContactSubmission struct {
	ID             int64     `json:"id" db:"id"`
	FirstName      string    `json:"firstName" db:"first_name"`
	LastName       string    `json:"lastName" db:"last_name"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	Message        string    `json:"message" db:"message"`
	RecipientName  string    `json:"recipientName" db:"recipient_name"`
	RecipientEmail *string   `json:"recipientEmail,omitempty" db:"recipient_email"`
	Category       string    `json:"category" db:"category"`
	BusinessURL    string    `json:"businessUrl" db:"business_url"`
	BusinessName   string    `json:"businessName" db:"business_name"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// BusinessLead is a "List Your Business" request from 'business_leads'.
type BusinessLead struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	BusinessType string    `json:"businessType" db:"business_type"`
	Message      string    `json:"message" db:"message"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// --- API Input Structs ---

// ContactInput is the contact form posted from a profile page.
// Category and Member are the route segments of the profile being viewed;
// the recipient is resolved from them on the server.
type ContactInput struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=200"`
	Phone     string `json:"phone" binding:"required,max=40"`
	Message   string `json:"message" binding:"required,max=5000"`
	Category  string `json:"category" binding:"required,max=160"`
	Member    string `json:"member" binding:"required,max=201"`
}

type LeadInput struct {
	Name         string `json:"name" binding:"required,max=200"`
	Email        string `json:"email" binding:"required,email,max=200"`
	Phone        string `json:"phone" binding:"required,max=40"`
	BusinessType string `json:"businessType" binding:"required,max=120"`
	Message      string `json:"message" binding:"max=5000"`
}
