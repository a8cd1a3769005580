package models

import "time"

// SEOMetadata optionally overrides generated page metadata for one member.
type SEOMetadata struct {
	ID                 string     `json:"id" db:"id"`
	MemberID           string     `json:"memberId" db:"member_id"`
	Title              *string    `json:"title,omitempty" db:"title"`
	Description        *string    `json:"description,omitempty" db:"description"`
	Keywords           StringList `json:"keywords,omitempty" db:"keywords"`
	OGTitle            *string    `json:"ogTitle,omitempty" db:"og_title"`
	OGDescription      *string    `json:"ogDescription,omitempty" db:"og_description"`
	TwitterTitle       *string    `json:"twitterTitle,omitempty" db:"twitter_title"`
	TwitterDescription *string    `json:"twitterDescription,omitempty" db:"twitter_description"`
	SchemaDescription  *string    `json:"schemaDescription,omitempty" db:"schema_description"`
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time  `json:"updatedAt" db:"updated_at"`
}
