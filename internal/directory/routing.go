package directory

import (
	"strings"

	"github.com/01moynul/bizdirectory-golang/internal/format"
	"github.com/01moynul/bizdirectory-golang/internal/models"
)

// ParseMemberSlug splits a "firstname-lastname" segment. Anything other than
// exactly two non-empty hyphen-separated tokens is rejected, so names that
// themselves contain a hyphen cannot be addressed.
func ParseMemberSlug(slug string) (firstname, lastname string, ok bool) {
	parts := strings.Split(slug, "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// CategoryPath is the listing route of a category.
func CategoryPath(categoryURL string) string {
	return "/" + categoryURL
}

// MemberPath is the profile route of a member, or "" when the member is not
// navigable.
func MemberPath(cat models.Category, m models.Member) string {
	if !m.Navigable() || cat.URL == "" {
		return ""
	}
	return "/" + cat.URL + "/" + format.MemberSlug(m.Firstname, m.Lastname)
}

// WithPaths attaches profile paths to a listing.
func WithPaths(members []models.Member, categories []models.Category) []models.MemberListItem {
	out := make([]models.MemberListItem, 0, len(members))
	for _, m := range members {
		item := models.MemberListItem{Member: m}
		if cat, ok := FindCategoryByID(categories, m.CategoryID); ok {
			item.Path = MemberPath(cat, m)
		}
		out = append(out, item)
	}
	return out
}
