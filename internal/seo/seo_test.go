package seo

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/bizdirectory-golang/internal/models"
)

func strPtr(s string) *string { return &s }

func legal() models.Category {
	return models.Category{ID: "c1", Name: "FamilyLaw", URL: "family-law", SEOTags: models.StringList{"lawyer", "divorce"}}
}

func jane() models.Member {
	return models.Member{
		ID:           "m1",
		Name:         strPtr("Doe Family Law"),
		Firstname:    "Jane",
		Lastname:     "Doe",
		Logo:         "https://cdn.example.com/uploads/members/doe.png",
		Address:      "1 King St W, Toronto",
		Phone:        "416-555-0100",
		Email:        strPtr("jane@doelaw.ca"),
		AboutUs:      strPtr("Family law practice serving the GTA."),
		ServiceItem1: strPtr("Custody"),
		Facebook:     strPtr("https://facebook.com/doelaw"),
	}
}

func TestGenerator_Home(t *testing.T) {
	g := NewGenerator("Business Directory", "https://dir.example.com/")
	meta := g.Home()

	assert.Equal(t, "Business Directory | Find Local Businesses", meta.Title)
	assert.Equal(t, "https://dir.example.com/", meta.Canonical)
	assert.LessOrEqual(t, utf8.RuneCountInString(meta.Description), MaxDescription)
	assert.Nil(t, meta.Schema)
}

func TestGenerator_ForCategory(t *testing.T) {
	g := NewGenerator("Business Directory", "https://dir.example.com")
	meta := g.ForCategory(legal())

	assert.Equal(t, "Family Law | Business Directory", meta.Title)
	assert.Equal(t, []string{"Family Law", "lawyer", "divorce"}, meta.Keywords)
	assert.Equal(t, "https://dir.example.com/family-law", meta.Canonical)
	assert.Contains(t, meta.Description, "Family Law")
}

func TestGenerator_ForMember(t *testing.T) {
	g := NewGenerator("Business Directory", "https://dir.example.com")
	url := "https://dir.example.com/family-law/jane-doe"
	meta := g.ForMember(jane(), legal(), nil, url)

	assert.Equal(t, "Doe Family Law | Family Law | Business Directory", meta.Title)
	assert.Equal(t, "Family law practice serving the GTA.", meta.Description)
	assert.Equal(t, []string{"Doe Family Law", "Family Law", "lawyer", "divorce", "Custody"}, meta.Keywords)
	assert.Equal(t, url, meta.Canonical)

	require.NotNil(t, meta.Schema)
	assert.Equal(t, "LocalBusiness", meta.Schema.Type)
	assert.Equal(t, "416-555-0100", meta.Schema.Telephone)
	assert.Equal(t, "jane@doelaw.ca", meta.Schema.Email)
	require.NotNil(t, meta.Schema.Address)
	assert.Equal(t, "1 King St W, Toronto", meta.Schema.Address.StreetAddress)
	assert.Equal(t, []string{"https://facebook.com/doelaw"}, meta.Schema.SameAs)
}

func TestGenerator_ForMember_OverrideWinsFieldByField(t *testing.T) {
	g := NewGenerator("Business Directory", "https://dir.example.com")
	override := &models.SEOMetadata{
		MemberID:          "m1",
		Title:             strPtr("Toronto Family Lawyer Jane Doe"),
		Keywords:          models.StringList{"toronto lawyer"},
		SchemaDescription: strPtr("Award-winning family law firm."),
		OGTitle:           strPtr("  "),
	}

	meta := g.ForMember(jane(), legal(), override, "u")

	assert.Equal(t, "Toronto Family Lawyer Jane Doe", meta.Title)
	assert.Equal(t, []string{"toronto lawyer"}, meta.Keywords)
	assert.Equal(t, "Award-winning family law firm.", meta.Schema.Description)
	assert.Equal(t, "Doe Family Law | Family Law | Business Directory", meta.OGTitle)
	assert.Equal(t, "Family law practice serving the GTA.", meta.Description)
}

func TestGenerator_ForMember_FallbackDescription(t *testing.T) {
	g := NewGenerator("Business Directory", "https://dir.example.com")
	m := jane()
	m.AboutUs = nil
	m.Address = ""

	meta := g.ForMember(m, legal(), nil, "u")

	assert.Equal(t, "Doe Family Law - Family Law on Business Directory.", meta.Description)
	assert.Nil(t, meta.Schema.Address)
}

func TestTruncate(t *testing.T) {
	short := "short"
	assert.Equal(t, short, Truncate(short))

	long := strings.Repeat("é", 200)
	got := Truncate(long)
	assert.Equal(t, MaxDescription, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
}
