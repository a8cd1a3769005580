package store

import (
	"context"
	"fmt"

	"github.com/01moynul/bizdirectory-golang/internal/models"
)

// DashboardStats counts the rows of every directory table in one round trip.
func (s *Store) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM members),
			(SELECT COUNT(*) FROM categories),
			(SELECT COUNT(*) FROM community_members),
			(SELECT COUNT(*) FROM contact_submissions),
			(SELECT COUNT(*) FROM business_leads)`

	var stats models.DashboardStats
	err := s.DB.QueryRowContext(ctx, query).Scan(
		&stats.Members,
		&stats.Categories,
		&stats.CommunityMembers,
		&stats.ContactSubmissions,
		&stats.BusinessLeads,
	)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("count dashboard stats: %w", err)
	}
	return stats, nil
}
