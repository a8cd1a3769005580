// Package seo builds page metadata for the public directory pages.
package seo

import (
	"strings"
	"unicode/utf8"

	"github.com/01moynul/bizdirectory-golang/internal/models"
)

// MaxDescription is the longest description emitted, in runes.
const MaxDescription = 160

// Metadata is the head data of a page.
type Metadata struct {
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Keywords           []string       `json:"keywords"`
	Canonical          string         `json:"canonical,omitempty"`
	OGTitle            string         `json:"ogTitle"`
	OGDescription      string         `json:"ogDescription"`
	OGImage            string         `json:"ogImage,omitempty"`
	TwitterTitle       string         `json:"twitterTitle"`
	TwitterDescription string         `json:"twitterDescription"`
	Schema             *LocalBusiness `json:"schema,omitempty"`
}

// LocalBusiness is the schema.org JSON-LD object of a member profile.
type LocalBusiness struct {
	Context     string         `json:"@context"`
	Type        string         `json:"@type"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	URL         string         `json:"url,omitempty"`
	Image       string         `json:"image,omitempty"`
	Telephone   string         `json:"telephone,omitempty"`
	Email       string         `json:"email,omitempty"`
	Address     *PostalAddress `json:"address,omitempty"`
	SameAs      []string       `json:"sameAs,omitempty"`
}

type PostalAddress struct {
	Type          string `json:"@type"`
	StreetAddress string `json:"streetAddress"`
}

type Generator struct {
	SiteName string
	BaseURL  string
}

func NewGenerator(siteName, baseURL string) *Generator {
	return &Generator{SiteName: siteName, BaseURL: strings.TrimRight(baseURL, "/")}
}

// Home is the metadata of the directory landing page.
func (g *Generator) Home() Metadata {
	title := g.SiteName + " | Find Local Businesses"
	desc := Truncate("Browse trusted local businesses by category on " + g.SiteName +
		". Search by name, service, phone or email and contact businesses directly.")
	return Metadata{
		Title:              title,
		Description:        desc,
		Keywords:           []string{"business directory", "local businesses", g.SiteName},
		Canonical:          g.BaseURL + "/",
		OGTitle:            title,
		OGDescription:      desc,
		TwitterTitle:       title,
		TwitterDescription: desc,
	}
}

// ForCategory is the metadata of a category listing.
func (g *Generator) ForCategory(cat models.Category) Metadata {
	name := cat.DisplayName()
	title := name + " | " + g.SiteName
	desc := cat.Description
	if desc == "" {
		desc = "Find " + name + " businesses listed on " + g.SiteName + "."
	}
	desc = Truncate(desc)

	keywords := append([]string{name}, cat.SEOTags...)
	return Metadata{
		Title:              title,
		Description:        desc,
		Keywords:           keywords,
		Canonical:          g.BaseURL + "/" + cat.URL,
		OGTitle:            title,
		OGDescription:      desc,
		TwitterTitle:       title,
		TwitterDescription: desc,
	}
}

// ForMember is the metadata of a member profile. Non-empty override fields
// replace the generated ones; override may be nil.
func (g *Generator) ForMember(m models.Member, cat models.Category, override *models.SEOMetadata, pageURL string) Metadata {
	business := m.BusinessName()
	category := cat.DisplayName()

	title := business + " | " + category + " | " + g.SiteName
	desc := strings.TrimSpace(models.Deref(m.AboutUs))
	if desc == "" {
		desc = business + " - " + category + " on " + g.SiteName + "."
	}
	desc = Truncate(desc)

	keywords := []string{business, category}
	keywords = append(keywords, cat.SEOTags...)
	for _, item := range m.ServiceItems() {
		if item != "" {
			keywords = append(keywords, item)
		}
	}

	meta := Metadata{
		Title:              title,
		Description:        desc,
		Keywords:           keywords,
		Canonical:          pageURL,
		OGTitle:            title,
		OGDescription:      desc,
		OGImage:            m.Logo,
		TwitterTitle:       title,
		TwitterDescription: desc,
		Schema: &LocalBusiness{
			Context:     "https://schema.org",
			Type:        "LocalBusiness",
			Name:        business,
			Description: desc,
			URL:         pageURL,
			Image:       m.Logo,
			Telephone:   m.Phone,
			Email:       models.Deref(m.Email),
			SameAs:      socialLinks(m),
		},
	}
	if m.Address != "" {
		meta.Schema.Address = &PostalAddress{Type: "PostalAddress", StreetAddress: m.Address}
	}

	if override != nil {
		applyOverride(&meta, override)
	}
	return meta
}

func applyOverride(meta *Metadata, o *models.SEOMetadata) {
	set := func(dst *string, src *string, truncate bool) {
		if v := strings.TrimSpace(models.Deref(src)); v != "" {
			if truncate {
				v = Truncate(v)
			}
			*dst = v
		}
	}
	set(&meta.Title, o.Title, false)
	set(&meta.Description, o.Description, true)
	set(&meta.OGTitle, o.OGTitle, false)
	set(&meta.OGDescription, o.OGDescription, true)
	set(&meta.TwitterTitle, o.TwitterTitle, false)
	set(&meta.TwitterDescription, o.TwitterDescription, true)
	if len(o.Keywords) > 0 {
		meta.Keywords = o.Keywords
	}
	if meta.Schema != nil {
		set(&meta.Schema.Description, o.SchemaDescription, false)
	}
}

func socialLinks(m models.Member) []string {
	var links []string
	for _, p := range []*string{m.Facebook, m.LinkedIn, m.Twitter, m.Instagram} {
		if v := models.Deref(p); v != "" {
			links = append(links, v)
		}
	}
	return links
}

// Truncate shortens s to MaxDescription runes, ending with "..." when cut.
func Truncate(s string) string {
	if utf8.RuneCountInString(s) <= MaxDescription {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:MaxDescription-3])) + "..."
}
