package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/01moynul/bizdirectory-golang/internal/format"
	"github.com/01moynul/bizdirectory-golang/internal/models"
	"github.com/01moynul/bizdirectory-golang/internal/store"
)

// --- Category Handlers ---

// AdminListCategories (Admin Only)
// Unlike the public list, store errors are reported.
func (h *Handlers) AdminListCategories(c *gin.Context) {
	categories, err := h.Admin.ListCategories(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory (Admin Only)
// The URL is derived from the name; duplicates are not checked.
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input models.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat := models.Category{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Icon:        input.Icon,
		URL:         format.CategorySlug(input.Name),
		Color:       input.Color,
		SEOTags:     models.StringList(input.SEOTags),
		Description: input.Description,
		CreatedAt:   h.now().UTC(),
	}

	if err := h.Admin.CreateCategory(c.Request.Context(), &cat); err != nil {
		h.Logger.Error("Failed to create category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": cat})
}

// UpdateCategory (Admin Only)
func (h *Handlers) UpdateCategory(c *gin.Context) {
	var input models.UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url := format.CategorySlug(input.URL)
	if url == "" {
		url = format.CategorySlug(input.Name)
	}

	cat := models.Category{
		ID:          c.Param("id"),
		Name:        input.Name,
		Icon:        input.Icon,
		URL:         url,
		Color:       input.Color,
		SEOTags:     models.StringList(input.SEOTags),
		Description: input.Description,
	}

	if err := h.Admin.UpdateCategory(c.Request.Context(), &cat); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		h.Logger.Error("Failed to update category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "category": cat})
}

// DeleteCategory (Admin Only)
// Members of the category stay in the store and drop out of listings.
func (h *Handlers) DeleteCategory(c *gin.Context) {
	if err := h.Admin.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		h.Logger.Error("Failed to delete category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// --- Community Member Handlers ---

// ListCommunityMembers (Admin Only)
func (h *Handlers) ListCommunityMembers(c *gin.Context) {
	community, err := h.Admin.ListCommunityMembers(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to list community members", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"community": community})
}

// CreateCommunityMember (Admin Only)
func (h *Handlers) CreateCommunityMember(c *gin.Context) {
	var input models.CreateCommunityMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := h.now().UTC()
	cm := models.CommunityMember{
		ID:         uuid.New().String(),
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Avatar:     input.Avatar,
		CategoryID: input.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.Admin.CreateCommunityMember(c.Request.Context(), &cm); err != nil {
		h.Logger.Error("Failed to create community member", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create community member"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Community member created", "communityMember": cm})
}

// DeleteCommunityMember (Admin Only)
func (h *Handlers) DeleteCommunityMember(c *gin.Context) {
	if err := h.Admin.DeleteCommunityMember(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Community member not found"})
			return
		}
		h.Logger.Error("Failed to delete community member", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete community member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Community member deleted"})
}
