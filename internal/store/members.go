package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/01moynul/bizdirectory-golang/internal/models"
)

const memberColumns = `id, name, firstname, lastname, logo, address, category_id, phone,
	email, website, iframe, aboutus,
	section_item1, section_item2, section_item3, section_item4, section_item5,
	facebook, linkedin, twitter, instagram, whatsapp, created_at`

func scanMember(row rowScanner) (models.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Firstname,
		&m.Lastname,
		&m.Logo,
		&m.Address,
		&m.CategoryID,
		&m.Phone,
		&m.Email,
		&m.Website,
		&m.Iframe,
		&m.AboutUs,
		&m.ServiceItem1,
		&m.ServiceItem2,
		&m.ServiceItem3,
		&m.ServiceItem4,
		&m.ServiceItem5,
		&m.Facebook,
		&m.LinkedIn,
		&m.Twitter,
		&m.Instagram,
		&m.WhatsApp,
		&m.CreatedAt,
	)
	return m, err
}

func (s *Store) queryMembers(ctx context.Context, query string, args ...interface{}) ([]models.Member, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return members, nil
}

// ListMembers returns every member ordered by first name.
func (s *Store) ListMembers(ctx context.Context) ([]models.Member, error) {
	return s.queryMembers(ctx, `SELECT `+memberColumns+` FROM members ORDER BY firstname ASC`)
}

// FindMembersByName returns the members of a category whose first and last
// names equal the given tokens, ignoring case.
func (s *Store) FindMembersByName(ctx context.Context, categoryID, firstname, lastname string) ([]models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members
		WHERE category_id = ? AND LOWER(firstname) = LOWER(?) AND LOWER(lastname) = LOWER(?)`
	return s.queryMembers(ctx, query, categoryID, firstname, lastname)
}

// GetMember loads one member by id.
func (s *Store) GetMember(ctx context.Context, id string) (*models.Member, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+memberColumns+` FROM members WHERE id = ?`, id)
	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &m, nil
}

// UpsertMember inserts the member or replaces every column of an existing row
// with the same id.
func (s *Store) UpsertMember(ctx context.Context, m *models.Member) error {
	query := `
		INSERT INTO members
		(id, name, firstname, lastname, logo, address, category_id, phone,
		 email, website, iframe, aboutus,
		 section_item1, section_item2, section_item3, section_item4, section_item5,
		 facebook, linkedin, twitter, instagram, whatsapp, created_at)
		VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
		name = VALUES(name), firstname = VALUES(firstname), lastname = VALUES(lastname),
		logo = VALUES(logo), address = VALUES(address), category_id = VALUES(category_id),
		phone = VALUES(phone), email = VALUES(email), website = VALUES(website),
		iframe = VALUES(iframe), aboutus = VALUES(aboutus),
		section_item1 = VALUES(section_item1), section_item2 = VALUES(section_item2),
		section_item3 = VALUES(section_item3), section_item4 = VALUES(section_item4),
		section_item5 = VALUES(section_item5),
		facebook = VALUES(facebook), linkedin = VALUES(linkedin), twitter = VALUES(twitter),
		instagram = VALUES(instagram), whatsapp = VALUES(whatsapp)`

	args := []interface{}{
		m.ID, m.Name, m.Firstname, m.Lastname, m.Logo, m.Address, m.CategoryID, m.Phone,
		m.Email, m.Website, m.Iframe, m.AboutUs,
		m.ServiceItem1, m.ServiceItem2, m.ServiceItem3, m.ServiceItem4, m.ServiceItem5,
		m.Facebook, m.LinkedIn, m.Twitter, m.Instagram, m.WhatsApp, m.CreatedAt,
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert member: %w", err)
	}
	return nil
}

// DeleteMember removes a member by id.
func (s *Store) DeleteMember(ctx context.Context, id string) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return requireAffected(result)
}
