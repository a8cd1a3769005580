package models

import (
	"strings"
	"time"
)

// Member is a paid business listing from the 'members' table.
// Optional columns are pointers so NULL renders as an absent JSON key.
// The binding tags validate the admin member form.
type Member struct {
	ID         string  `json:"id" db:"id"`
	Name       *string `json:"name,omitempty" db:"name" binding:"omitempty,max=200"`
	Firstname  string  `json:"firstname" db:"firstname" binding:"required,max=100"`
	Lastname   string  `json:"lastname" db:"lastname" binding:"required,max=100"`
	Logo       string  `json:"logo" db:"logo"`
	Address    string  `json:"address" db:"address"`
	CategoryID string  `json:"categoryId" db:"category_id" binding:"required"`
	Phone      string  `json:"phone" db:"phone" binding:"max=40"`

	Email   *string `json:"email,omitempty" db:"email" binding:"omitempty,email,max=200"`
	Website *string `json:"website,omitempty" db:"website"`
	Iframe  *string `json:"iframe,omitempty" db:"iframe"`
	AboutUs *string `json:"aboutUs,omitempty" db:"aboutus"`

	// --- Services (free text, up to 5) ---
	ServiceItem1 *string `json:"serviceItem1,omitempty" db:"section_item1"`
	ServiceItem2 *string `json:"serviceItem2,omitempty" db:"section_item2"`
	ServiceItem3 *string `json:"serviceItem3,omitempty" db:"section_item3"`
	ServiceItem4 *string `json:"serviceItem4,omitempty" db:"section_item4"`
	ServiceItem5 *string `json:"serviceItem5,omitempty" db:"section_item5"`

	// --- Social Links ---
	Facebook  *string `json:"facebook,omitempty" db:"facebook"`
	LinkedIn  *string `json:"linkedin,omitempty" db:"linkedin"`
	Twitter   *string `json:"twitter,omitempty" db:"twitter"`
	Instagram *string `json:"instagram,omitempty" db:"instagram"`
	WhatsApp  *string `json:"whatsapp,omitempty" db:"whatsapp"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Navigable reports whether the member can have a profile page.
// Records missing either name part are listed but inert.
func (m Member) Navigable() bool {
	return strings.TrimSpace(m.Firstname) != "" && strings.TrimSpace(m.Lastname) != ""
}

// FullName is "Firstname Lastname", trimmed when a part is missing.
func (m Member) FullName() string {
	return strings.TrimSpace(m.Firstname + " " + m.Lastname)
}

// BusinessName prefers the display name and falls back to the full name.
func (m Member) BusinessName() string {
	if m.Name != nil && strings.TrimSpace(*m.Name) != "" {
		return *m.Name
	}
	return m.FullName()
}

// ServiceItems returns the five service slots in order, empty strings for unset ones.
func (m Member) ServiceItems() []string {
	return []string{
		Deref(m.ServiceItem1),
		Deref(m.ServiceItem2),
		Deref(m.ServiceItem3),
		Deref(m.ServiceItem4),
		Deref(m.ServiceItem5),
	}
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// MemberListItem is a member as shown in listings, with its profile path
// (empty when the member is not navigable).
type MemberListItem struct {
	Member
	Path string `json:"path,omitempty"`
}
