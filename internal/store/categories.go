package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/01moynul/bizdirectory-golang/internal/models"
)

const categoryColumns = `id, name, icon, url, color, seo_tags, description, created_at`

func scanCategory(row rowScanner) (models.Category, error) {
	var c models.Category
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Icon,
		&c.URL,
		&c.Color,
		&c.SEOTags,
		&c.Description,
		&c.CreatedAt,
	)
	return c, err
}

// ListCategories returns every category ordered by name.
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// GetCategory loads one category by id.
func (s *Store) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = ?`, id)
	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// CreateCategory inserts a category. The caller sets ID and URL.
func (s *Store) CreateCategory(ctx context.Context, c *models.Category) error {
	query := `
		INSERT INTO categories
		(id, name, icon, url, color, seo_tags, description, created_at)
		VALUES
		(?, ?, ?, ?, ?, ?, ?, ?)`

	args := []interface{}{
		c.ID,
		c.Name,
		c.Icon,
		c.URL,
		c.Color,
		c.SEOTags,
		c.Description,
		c.CreatedAt,
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// UpdateCategory overwrites the editable fields of a category.
func (s *Store) UpdateCategory(ctx context.Context, c *models.Category) error {
	query := `
		UPDATE categories
		SET name = ?, icon = ?, url = ?, color = ?, seo_tags = ?, description = ?
		WHERE id = ?`

	result, err := s.DB.ExecContext(ctx, query, c.Name, c.Icon, c.URL, c.Color, c.SEOTags, c.Description, c.ID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if err := requireAffected(result); !errors.Is(err, ErrNotFound) {
		return err
	}

	// Zero affected rows also means "matched but unchanged" on connections
	// opened without clientFoundRows.
	var exists bool
	err = s.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM categories WHERE id = ?)`, c.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category. Members pointing at it are left orphaned.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
