package models

import (
	"time"

	"github.com/01moynul/bizdirectory-golang/internal/format"
)

// Category defines the struct for the 'categories' table.
// URL is the routing key used in /{category} paths.
type Category struct {
	ID          string     `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Icon        string     `json:"icon" db:"icon"`
	URL         string     `json:"url" db:"url"`
	Color       string     `json:"color" db:"color"`
	SEOTags     StringList `json:"seoTags" db:"seo_tags"`
	Description string     `json:"description" db:"description"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}

// DisplayName renders the camel-case name with spaces ("RealEstate" -> "Real Estate").
func (c Category) DisplayName() string {
	return format.DisplayName(c.Name)
}

// CategoryWithCount is the home-grid view of a category.
type CategoryWithCount struct {
	Category
	DisplayName string `json:"displayName"`
	MemberCount int    `json:"memberCount"`
}

// --- API Input Structs ---

type CreateCategoryInput struct {
	Name        string   `json:"name" binding:"required"`
	Icon        string   `json:"icon" binding:"required"`
	Color       string   `json:"color" binding:"required"`
	SEOTags     []string `json:"seoTags"`
	Description string   `json:"description"`
}

type UpdateCategoryInput struct {
	Name        string   `json:"name" binding:"required"`
	Icon        string   `json:"icon" binding:"required"`
	Color       string   `json:"color" binding:"required"`
	URL         string   `json:"url"`
	SEOTags     []string `json:"seoTags"`
	Description string   `json:"description"`
}
