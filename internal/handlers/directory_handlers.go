package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/bizdirectory-golang/internal/directory"
	"github.com/01moynul/bizdirectory-golang/internal/models"
)

// listingRoot is where unknown categories are sent.
const listingRoot = "/v1/directory"

// GetDirectory handles GET /v1/directory?q=
// It returns the category grid and, when q is set, the global search results.
func (h *Handlers) GetDirectory(c *gin.Context) {
	ctx := c.Request.Context()
	query := strings.TrimSpace(c.Query("q"))

	var (
		snap    directory.Snapshot
		results []models.Member
	)
	if query != "" {
		snap, results = h.Directory.Search(ctx, query)
	} else {
		snap = h.Directory.Snapshot(ctx)
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": directory.CategoryCounts(snap.Categories, snap.Members),
		"query":      query,
		"results":    directory.WithPaths(results, snap.Categories),
		"seo":        h.SEO.Home(),
	})
}

// GetCategoryListing handles GET /v1/directory/:category
func (h *Handlers) GetCategoryListing(c *gin.Context) {
	listing, categories, ok := h.Directory.CategoryListing(c.Request.Context(), c.Param("category"))
	if !ok {
		c.Redirect(http.StatusFound, listingRoot)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category":    listing.Category,
		"displayName": listing.Category.DisplayName(),
		"members":     directory.WithPaths(listing.Members, categories),
		"community":   listing.Community,
		"seo":         h.SEO.ForCategory(listing.Category),
	})
}

// GetMemberProfile handles GET /v1/directory/:category/:member
// Every not-found outcome redirects to the category listing.
func (h *Handlers) GetMemberProfile(c *gin.Context) {
	ctx := c.Request.Context()

	res := h.Directory.ResolveMember(ctx, c.Param("category"), c.Param("member"))
	if !res.Found() {
		c.Redirect(http.StatusFound, listingRoot+res.Redirect)
		return
	}

	member := *res.Member
	path := directory.MemberPath(res.Category, member)
	override := h.Directory.SEOOverride(ctx, member.ID)

	services := []string{}
	for _, item := range member.ServiceItems() {
		if item != "" {
			services = append(services, item)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"member":      member,
		"category":    res.Category,
		"displayName": res.Category.DisplayName(),
		"path":        path,
		"services":    services,
		"seo":         h.SEO.ForMember(member, res.Category, override, h.BaseURL+path),
	})
}

// GetCategories handles GET /v1/categories (Public)
func (h *Handlers) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Directory.Categories(c.Request.Context())})
}
