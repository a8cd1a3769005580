package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//
// --- Admin Dashboard Stats ---
//

// GetDashboardStats returns KPI data for the admin dashboard
// GET /v1/admin/dashboard-stats
func (h *Handlers) GetDashboardStats(c *gin.Context) {
	stats, err := h.Admin.DashboardStats(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to count dashboard stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
