package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/01moynul/bizdirectory-golang/internal/auth"
	"github.com/01moynul/bizdirectory-golang/internal/metrics"
	"github.com/01moynul/bizdirectory-golang/internal/middleware"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /v1/login
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, session, err := h.Sessions.SignIn(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.Metrics.RecordEvent(metrics.ActionLogin, metrics.OutcomeDenied)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		h.Logger.Error("Failed to issue session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	h.Metrics.RecordEvent(metrics.ActionLogin, metrics.OutcomeSuccess)
	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"email":     session.Email,
		"expiresAt": session.ExpiresAt,
		"redirect":  "/admin",
	})
}

// Logout handles POST /v1/logout (session required)
func (h *Handlers) Logout(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in", "redirect": "/login"})
		return
	}

	if err := h.Sessions.SignOut(c.Request.Context(), session); err != nil {
		h.Logger.Error("Failed to revoke session", zap.String("sessionId", session.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out", "redirect": "/login"})
}

// GetSession handles GET /v1/session (session required)
func (h *Handlers) GetSession(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in", "redirect": "/login"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"email":         session.Email,
		"expiresAt":     session.ExpiresAt,
	})
}
