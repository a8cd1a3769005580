package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/01moynul/bizdirectory-golang/internal/handlers"
	"github.com/01moynul/bizdirectory-golang/internal/metrics"
	"github.com/01moynul/bizdirectory-golang/internal/middleware"
)

// Options carries what the router needs beyond the handlers.
type Options struct {
	AllowedOrigin string
	UploadDir     string
	Sessions      middleware.Authenticator
	Metrics       *metrics.Metrics
	Logger        *zap.Logger
}

func SetupRouter(h *handlers.Handlers, opts Options) *gin.Engine {
	router := gin.New()

	// --- APPLY THE CORS GUARD ---
	// This must be the very first thing the router uses
	router.Use(middleware.CORSMiddleware(opts.AllowedOrigin))
	router.Use(middleware.Recovery(opts.Logger))
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(opts.Metrics.Middleware())

	// --- Uploaded logos and avatars ---
	router.Static("/uploads", opts.UploadDir)
	router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	requireSession := middleware.AdminMiddleware(opts.Sessions, opts.Logger)

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Directory Routes (Public) ---
		v1.GET("/directory", h.GetDirectory)
		v1.GET("/directory/:category", h.GetCategoryListing)
		v1.GET("/directory/:category/:member", h.GetMemberProfile)
		v1.GET("/categories", h.GetCategories)

		// --- Forms (Public) ---
		v1.POST("/contact", h.SubmitContact)
		v1.POST("/leads", h.SubmitLead)

		// --- Auth Routes ---
		v1.POST("/login", h.Login)
		v1.POST("/logout", requireSession, h.Logout)
		v1.GET("/session", requireSession, h.GetSession)

		// --- Admin-Only Routes ---
		admin := v1.Group("/admin")
		admin.Use(requireSession)
		{
			admin.GET("/members", h.ListMembers)
			admin.GET("/members/:id", h.GetMember)
			admin.POST("/members", h.CreateMember)
			admin.PUT("/members/:id", h.UpdateMember)
			admin.DELETE("/members/:id", h.DeleteMember)

			admin.GET("/categories", h.AdminListCategories)
			admin.POST("/categories", h.CreateCategory)
			admin.PUT("/categories/:id", h.UpdateCategory)
			admin.DELETE("/categories/:id", h.DeleteCategory)

			admin.GET("/community", h.ListCommunityMembers)
			admin.POST("/community", h.CreateCommunityMember)
			admin.DELETE("/community/:id", h.DeleteCommunityMember)

			admin.POST("/uploads", h.UploadImage)
			admin.GET("/dashboard-stats", h.GetDashboardStats)
		}
	}

	return router
}
