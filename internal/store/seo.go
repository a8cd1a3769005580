package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/01moynul/bizdirectory-golang/internal/models"
)

// GetSEOMetadata loads the metadata override of a member, or ErrNotFound.
func (s *Store) GetSEOMetadata(ctx context.Context, memberID string) (*models.SEOMetadata, error) {
	query := `SELECT id, member_id, title, description, keywords, og_title, og_description,
		twitter_title, twitter_description, schema_description, created_at, updated_at
		FROM seo_metadata WHERE member_id = ?`

	var m models.SEOMetadata
	err := s.DB.QueryRowContext(ctx, query, memberID).Scan(
		&m.ID,
		&m.MemberID,
		&m.Title,
		&m.Description,
		&m.Keywords,
		&m.OGTitle,
		&m.OGDescription,
		&m.TwitterTitle,
		&m.TwitterDescription,
		&m.SchemaDescription,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get seo metadata: %w", err)
	}
	return &m, nil
}
