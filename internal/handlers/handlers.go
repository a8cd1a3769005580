package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/01moynul/bizdirectory-golang/internal/auth"
	"github.com/01moynul/bizdirectory-golang/internal/contact"
	"github.com/01moynul/bizdirectory-golang/internal/directory"
	"github.com/01moynul/bizdirectory-golang/internal/models"
	"github.com/01moynul/bizdirectory-golang/internal/seo"
	"github.com/01moynul/bizdirectory-golang/internal/storage"
)

// DirectoryService is the public read side (implemented by *directory.Service).
type DirectoryService interface {
	Snapshot(ctx context.Context) directory.Snapshot
	Categories(ctx context.Context) []models.Category
	Search(ctx context.Context, query string) (directory.Snapshot, []models.Member)
	CategoryListing(ctx context.Context, categoryURL string) (directory.Listing, []models.Category, bool)
	ResolveMember(ctx context.Context, categoryURL, memberSlug string) directory.Resolution
	SEOOverride(ctx context.Context, memberID string) *models.SEOMetadata
}

// ContactService is implemented by *contact.Service.
type ContactService interface {
	Submit(ctx context.Context, sub contact.Submission) (contact.Confirmation, error)
	SubmitLead(ctx context.Context, lead contact.Lead) error
}

// SessionManager is implemented by *auth.Authenticator.
type SessionManager interface {
	SignIn(email, password string) (string, auth.Session, error)
	SignOut(ctx context.Context, session auth.Session) error
}

// AdminStore is the write side of the directory store (implemented by *store.Store).
type AdminStore interface {
	ListMembers(ctx context.Context) ([]models.Member, error)
	GetMember(ctx context.Context, id string) (*models.Member, error)
	UpsertMember(ctx context.Context, m *models.Member) error
	DeleteMember(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, c *models.Category) error
	UpdateCategory(ctx context.Context, c *models.Category) error
	DeleteCategory(ctx context.Context, id string) error

	ListCommunityMembers(ctx context.Context) ([]models.CommunityMember, error)
	CreateCommunityMember(ctx context.Context, c *models.CommunityMember) error
	DeleteCommunityMember(ctx context.Context, id string) error

	DashboardStats(ctx context.Context) (models.DashboardStats, error)
}

// EventRecorder counts business events (implemented by *metrics.Metrics).
type EventRecorder interface {
	RecordEvent(action, outcome string)
}

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Directory DirectoryService
	Contact   ContactService
	Admin     AdminStore
	Sessions  SessionManager
	Uploader  storage.Uploader
	SEO       *seo.Generator
	Metrics   EventRecorder
	Logger    *zap.Logger

	// BaseURL is the public site origin; it prefixes profile paths in emails
	// and canonical links.
	BaseURL string
	// Now defaults to time.Now.
	Now func() time.Time
}

func (h *Handlers) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
