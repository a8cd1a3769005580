package models

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// CommunityMember is a non-paid directory entry without a profile page.
type CommunityMember struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      *string   `json:"email,omitempty" db:"email"`
	Phone      *string   `json:"phone,omitempty" db:"phone"`
	Avatar     *string   `json:"avatar,omitempty" db:"avatar"`
	CategoryID string    `json:"categoryId" db:"category_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// Initials returns up to two upper-cased initials, used when there is no avatar.
func (c CommunityMember) Initials() string {
	var b strings.Builder
	for _, word := range strings.Fields(c.Name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		if utf8.RuneCountInString(b.String()) == 2 {
			break
		}
	}
	return b.String()
}

type CreateCommunityMemberInput struct {
	Name       string  `json:"name" binding:"required"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone"`
	Avatar     *string `json:"avatar"`
	CategoryID string  `json:"categoryId" binding:"required"`
}
