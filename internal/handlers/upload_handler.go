package handlers

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/01moynul/bizdirectory-golang/internal/format"
	"github.com/01moynul/bizdirectory-golang/internal/storage"
)

// uploadLogo stores a member logo under members/{slug}_{millis}.{ext}.
func (h *Handlers) uploadLogo(ctx context.Context, file *multipart.FileHeader, businessName, ext string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open logo: %w", err)
	}
	defer src.Close()

	key := "members/" + format.LogoFilename(businessName, ext, h.now())
	return h.Uploader.Upload(ctx, key, src)
}

// UploadImage handles POST /v1/admin/uploads
// It stores a standalone image (community avatars) and returns its URL.
func (h *Handlers) UploadImage(c *gin.Context) {
	// 1. Get the file from the request
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	// 2. Only images are accepted
	ext, err := storage.ImageExt(file.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidFileTypeMsg})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}
	defer src.Close()

	// 3. Generate a safe unique name (uuid + extension) and store it
	key := fmt.Sprintf("community/%s.%s", uuid.New().String(), ext)
	url, err := h.Uploader.Upload(c.Request.Context(), key, src)
	if err != nil {
		h.Logger.Error("Failed to store upload", zap.String("key", key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
