package directory

import (
	"math/rand"
	"strings"

	"github.com/01moynul/bizdirectory-golang/internal/models"
)

// Shuffler permutes members in place.
type Shuffler func([]models.Member)

// RandomShuffle is a seedless uniform permutation. It is a presentation choice:
// listings are shown in a fresh random order on each visit.
func RandomShuffle(members []models.Member) {
	rand.Shuffle(len(members), func(i, j int) {
		members[i], members[j] = members[j], members[i]
	})
}

// Filter computes the listing result set.
//
// With a selected category URL it returns that category's members, shuffled.
// Without one it returns the members matching the trimmed query, in source
// order, or nothing when the query is empty.
func Filter(members []models.Member, categories []models.Category, categoryURL, query string, shuffle Shuffler) []models.Member {
	if categoryURL != "" {
		cat, ok := FindCategoryByURL(categories, categoryURL)
		if !ok {
			return []models.Member{}
		}
		result := MembersInCategory(members, cat.ID)
		if shuffle != nil {
			shuffle(result)
		}
		return result
	}
	return Search(members, categories, query)
}

// MembersInCategory returns a fresh slice of the members with the given category id.
func MembersInCategory(members []models.Member, categoryID string) []models.Member {
	result := []models.Member{}
	for _, m := range members {
		if m.CategoryID == categoryID {
			result = append(result, m)
		}
	}
	return result
}

// Search matches the lower-cased, trimmed query as a substring of any priority
// field of each member. Members whose category is unknown never match.
func Search(members []models.Member, categories []models.Category, query string) []models.Member {
	needle := strings.ToLower(strings.TrimSpace(query))
	result := []models.Member{}
	if needle == "" {
		return result
	}

	byID := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	for _, m := range members {
		cat, ok := byID[m.CategoryID]
		if !ok {
			continue
		}
		for _, field := range PriorityFields(m, cat) {
			if strings.Contains(strings.ToLower(field), needle) {
				result = append(result, m)
				break
			}
		}
	}
	return result
}

// PriorityFields lists the searchable text of a member, in priority order.
func PriorityFields(m models.Member, cat models.Category) []string {
	fields := []string{
		m.FullName(),
		models.Deref(m.Name),
		cat.DisplayName(),
		m.Phone,
		models.Deref(m.Email),
	}
	return append(fields, m.ServiceItems()...)
}

// FindCategoryByURL looks up a category by its routing key.
func FindCategoryByURL(categories []models.Category, url string) (models.Category, bool) {
	for _, c := range categories {
		if c.URL == url {
			return c, true
		}
	}
	return models.Category{}, false
}

// FindCategoryByID looks up a category by id.
func FindCategoryByID(categories []models.Category, id string) (models.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// CategoryCounts pairs each category with its member count, keeping category order.
func CategoryCounts(categories []models.Category, members []models.Member) []models.CategoryWithCount {
	counts := make(map[string]int, len(categories))
	for _, m := range members {
		counts[m.CategoryID]++
	}
	out := make([]models.CategoryWithCount, 0, len(categories))
	for _, c := range categories {
		out = append(out, models.CategoryWithCount{
			Category:    c,
			DisplayName: c.DisplayName(),
			MemberCount: counts[c.ID],
		})
	}
	return out
}

// CommunityFor returns the community members listed under a category.
func CommunityFor(community []models.CommunityMember, categoryID string) []models.CommunityMember {
	out := []models.CommunityMember{}
	for _, c := range community {
		if c.CategoryID == categoryID {
			out = append(out, c)
		}
	}
	return out
}

// AdminFilter narrows the admin member table. It matches first name, last
// name, display name, email and phone; an empty query keeps everyone.
func AdminFilter(members []models.Member, query string) []models.Member {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return members
	}
	out := []models.Member{}
	for _, m := range members {
		for _, field := range []string{m.Firstname, m.Lastname, models.Deref(m.Name), models.Deref(m.Email), m.Phone} {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, m)
				break
			}
		}
	}
	return out
}
