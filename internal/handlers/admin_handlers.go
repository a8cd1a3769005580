package handlers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/01moynul/bizdirectory-golang/internal/directory"
	"github.com/01moynul/bizdirectory-golang/internal/metrics"
	"github.com/01moynul/bizdirectory-golang/internal/models"
	"github.com/01moynul/bizdirectory-golang/internal/storage"
	"github.com/01moynul/bizdirectory-golang/internal/store"
)

const invalidFileTypeMsg = "Invalid file type. Please upload a PNG, JPG, GIF or WebP image."

//
// --- Admin: Member Handlers ---
//

// ListMembers is the handler for GET /v1/admin/members?q=
func (h *Handlers) ListMembers(c *gin.Context) {
	ctx := c.Request.Context()

	members, err := h.Admin.ListMembers(ctx)
	if err != nil {
		h.Logger.Error("Failed to list members", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	categories, err := h.Admin.ListCategories(ctx)
	if err != nil {
		h.Logger.Error("Failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	members = directory.AdminFilter(members, c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"members": directory.WithPaths(members, categories)})
}

// GetMember is the handler for GET /v1/admin/members/:id
func (h *Handlers) GetMember(c *gin.Context) {
	member, err := h.Admin.GetMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		h.Logger.Error("Failed to load member", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": member})
}

// CreateMember is the handler for POST /v1/admin/members
// It expects multipart form data: a "member" JSON field and an optional "logo" file.
func (h *Handlers) CreateMember(c *gin.Context) {
	h.saveMember(c, "")
}

// UpdateMember is the handler for PUT /v1/admin/members/:id
// Fields are replaced wholesale, except an empty logo keeps the stored one.
func (h *Handlers) UpdateMember(c *gin.Context) {
	h.saveMember(c, c.Param("id"))
}

func (h *Handlers) saveMember(c *gin.Context, id string) {
	ctx := c.Request.Context()

	// 1. --- Validate Logo (before anything else) ---
	var logo *multipart.FileHeader
	var logoExt string
	file, err := c.FormFile("logo")
	switch {
	case err == nil:
		ext, extErr := storage.ImageExt(file.Filename)
		if extErr != nil {
			h.Metrics.RecordEvent(metrics.ActionLogoUpload, metrics.OutcomeInvalid)
			c.JSON(http.StatusBadRequest, gin.H{"error": invalidFileTypeMsg})
			return
		}
		logo, logoExt = file, ext
	case !errors.Is(err, http.ErrMissingFile):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expected multipart form data"})
		return
	}

	// 2. --- Parse Member Field ---
	raw := c.PostForm("member")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "member field is required"})
		return
	}
	var member models.Member
	if err := json.Unmarshal([]byte(raw), &member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "member field is not valid JSON"})
		return
	}
	if err := binding.Validator.ValidateStruct(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 3. --- Resolve Identity ---
	// Creates always get a fresh id. Updates must target an existing member
	// and keep its creation time and, when no new one is sent, its logo.
	created := id == ""
	if created {
		member.ID = uuid.New().String()
		member.CreatedAt = h.now().UTC()
	} else {
		existing, err := h.Admin.GetMember(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
				return
			}
			h.Logger.Error("Failed to load member", zap.String("memberId", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
			return
		}
		member.ID = existing.ID
		member.CreatedAt = existing.CreatedAt
		if member.Logo == "" {
			member.Logo = existing.Logo
		}
	}

	// 4. --- Upload Logo ---
	// The upload must succeed before the record is written.
	if logo != nil {
		url, err := h.uploadLogo(ctx, logo, member.BusinessName(), logoExt)
		if err != nil {
			h.Metrics.RecordEvent(metrics.ActionLogoUpload, metrics.OutcomeUploadFailed)
			h.Logger.Error("Failed to upload logo", zap.String("memberId", member.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload logo"})
			return
		}
		h.Metrics.RecordEvent(metrics.ActionLogoUpload, metrics.OutcomeSuccess)
		member.Logo = url
	}

	// 5. --- Save ---
	if err := h.Admin.UpsertMember(ctx, &member); err != nil {
		h.Logger.Error("Failed to save member", zap.String("memberId", member.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save member"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"message": "Member saved", "member": member})
}

// DeleteMember is the handler for DELETE /v1/admin/members/:id
func (h *Handlers) DeleteMember(c *gin.Context) {
	if err := h.Admin.DeleteMember(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		h.Logger.Error("Failed to delete member", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted"})
}
