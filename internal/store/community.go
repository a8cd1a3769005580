package store

import (
	"context"
	"fmt"

	"github.com/01moynul/bizdirectory-golang/internal/models"
)

// ListCommunityMembers returns every community member ordered by name.
func (s *Store) ListCommunityMembers(ctx context.Context) ([]models.CommunityMember, error) {
	query := `SELECT id, name, email, phone, avatar, category_id, created_at, updated_at
		FROM community_members ORDER BY name ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query community members: %w", err)
	}
	defer rows.Close()

	community := []models.CommunityMember{}
	for rows.Next() {
		var c models.CommunityMember
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Email,
			&c.Phone,
			&c.Avatar,
			&c.CategoryID,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan community member: %w", err)
		}
		community = append(community, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate community members: %w", err)
	}
	return community, nil
}

// CreateCommunityMember inserts a community member. The caller sets ID and timestamps.
func (s *Store) CreateCommunityMember(ctx context.Context, c *models.CommunityMember) error {
	query := `
		INSERT INTO community_members
		(id, name, email, phone, avatar, category_id, created_at, updated_at)
		VALUES
		(?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.DB.ExecContext(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Avatar, c.CategoryID, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert community member: %w", err)
	}
	return nil
}

// DeleteCommunityMember removes a community member by id.
func (s *Store) DeleteCommunityMember(ctx context.Context, id string) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM community_members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete community member: %w", err)
	}
	return requireAffected(result)
}
