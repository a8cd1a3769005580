package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/bizdirectory-golang/internal/models"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

var memberColumnNames = []string{
	"id", "name", "firstname", "lastname", "logo", "address", "category_id", "phone",
	"email", "website", "iframe", "aboutus",
	"section_item1", "section_item2", "section_item3", "section_item4", "section_item5",
	"facebook", "linkedin", "twitter", "instagram", "whatsapp", "created_at",
}

func memberRow(rows *sqlmock.Rows, id, first, last, categoryID string, email interface{}) *sqlmock.Rows {
	return rows.AddRow(
		id, nil, first, last, "", "12 King St, Toronto", categoryID, "416-555-0100",
		email, nil, nil, nil,
		"Wills", nil, nil, nil, nil,
		nil, nil, nil, nil, nil, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	)
}

func TestStore_ListCategories(t *testing.T) {
	s, mock := newMockStore(t)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "name", "icon", "url", "color", "seo_tags", "description", "created_at"}).
		AddRow("cat-legal", "Legal", "Scale", "legal", "purple", []byte(`["lawyer","notary"]`), "Lawyers", created).
		AddRow("cat-re", "RealEstate", "Home", "realestate", "blue", nil, "", created)
	mock.ExpectQuery(regexp.QuoteMeta("FROM categories ORDER BY name ASC")).WillReturnRows(rows)

	cats, err := s.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, models.StringList{"lawyer", "notary"}, cats[0].SEOTags)
	assert.Equal(t, models.StringList{}, cats[1].SEOTags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListCategories_QueryError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("FROM categories").WillReturnError(errors.New("gone away"))

	_, err := s.ListCategories(context.Background())
	assert.ErrorContains(t, err, "query categories")
}

func TestStore_ListMembers(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows(memberColumnNames)
	memberRow(rows, "m1", "Anand", "Kumar", "cat-re", nil)
	memberRow(rows, "m2", "Jane", "Doe", "cat-legal", "jane@doelaw.ca")
	mock.ExpectQuery(regexp.QuoteMeta("FROM members ORDER BY firstname ASC")).WillReturnRows(rows)

	members, err := s.ListMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Nil(t, members[0].Email)
	require.NotNil(t, members[1].Email)
	assert.Equal(t, "jane@doelaw.ca", *members[1].Email)
	assert.Equal(t, "Wills", *members[1].ServiceItem1)
	assert.Nil(t, members[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FindMembersByName(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows(memberColumnNames)
	memberRow(rows, "m2", "Jane", "Doe", "cat-legal", nil)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE category_id = ? AND LOWER(firstname) = LOWER(?) AND LOWER(lastname) = LOWER(?)")).
		WithArgs("cat-legal", "jane", "doe").
		WillReturnRows(rows)

	members, err := s.FindMembersByName(context.Background(), "cat-legal", "jane", "doe")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "m2", members[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetMember_NotFound(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("FROM members WHERE id = ?").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetMember(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_UpsertMember(t *testing.T) {
	s, mock := newMockStore(t)
	email := "jane@doelaw.ca"
	m := &models.Member{ID: "m2", Firstname: "Jane", Lastname: "Doe", CategoryID: "cat-legal", Email: &email}

	mock.ExpectExec(regexp.QuoteMeta("ON DUPLICATE KEY UPDATE")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.UpsertMember(context.Background(), m))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_DeleteMember(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM members WHERE id = ?")).
		WithArgs("m2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM members WHERE id = ?")).
		WithArgs("m9").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, s.DeleteMember(context.Background(), "m2"))
	assert.ErrorIs(t, s.DeleteMember(context.Background(), "m9"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CreateAndUpdateCategory(t *testing.T) {
	s, mock := newMockStore(t)
	c := &models.Category{ID: "cat-1", Name: "Real Estate & Law", URL: "real-estate-law", Icon: "Home", Color: "blue"}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO categories")).
		WithArgs("cat-1", "Real Estate & Law", "Home", "real-estate-law", "blue", "[]", "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE categories")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.CreateCategory(context.Background(), c))
	assert.NoError(t, s.UpdateCategory(context.Background(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpdateCategory_UnchangedRow(t *testing.T) {
	s, mock := newMockStore(t)
	c := &models.Category{ID: "cat-1", Name: "Legal", URL: "legal"}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE categories")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM categories WHERE id = ?)")).
		WithArgs("cat-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	assert.NoError(t, s.UpdateCategory(context.Background(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpdateCategory_Missing(t *testing.T) {
	s, mock := newMockStore(t)
	c := &models.Category{ID: "cat-9", Name: "Ghost", URL: "ghost"}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE categories")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM categories WHERE id = ?)")).
		WithArgs("cat-9").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	assert.ErrorIs(t, s.UpdateCategory(context.Background(), c), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListCommunityMembers(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "avatar", "category_id", "created_at", "updated_at"}).
		AddRow("c1", "Ravi Shankar", nil, "416-555-0199", nil, "cat-legal", now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM community_members ORDER BY name ASC")).WillReturnRows(rows)

	community, err := s.ListCommunityMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, community, 1)
	assert.Equal(t, "416-555-0199", *community[0].Phone)
	assert.Nil(t, community[0].Email)
}

func TestStore_InsertContactSubmission(t *testing.T) {
	s, mock := newMockStore(t)
	sub := &models.ContactSubmission{FirstName: "Kavi", LastName: "Raj", Email: "kavi@example.com", RecipientName: "Jane Doe"}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO contact_submissions")).
		WillReturnResult(sqlmock.NewResult(42, 1))

	require.NoError(t, s.InsertContactSubmission(context.Background(), sub))
	assert.Equal(t, int64(42), sub.ID)
}

func TestStore_InsertLead_Error(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO business_leads")).
		WillReturnError(errors.New("duplicate"))

	err := s.InsertLead(context.Background(), &models.BusinessLead{Name: "Kavi"})
	assert.ErrorContains(t, err, "insert business lead")
}

func TestStore_GetSEOMetadata(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "member_id", "title", "description", "keywords", "og_title", "og_description",
		"twitter_title", "twitter_description", "schema_description", "created_at", "updated_at"}).
		AddRow("seo-1", "m2", "Jane Doe Law", nil, []byte(`["family law"]`), nil, nil, nil, nil, nil, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM seo_metadata WHERE member_id = ?")).WithArgs("m2").WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("FROM seo_metadata WHERE member_id = ?")).WithArgs("m3").WillReturnError(sql.ErrNoRows)

	meta, err := s.GetSEOMetadata(context.Background(), "m2")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe Law", *meta.Title)
	assert.Equal(t, models.StringList{"family law"}, meta.Keywords)

	_, err = s.GetSEOMetadata(context.Background(), "m3")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_DashboardStats(t *testing.T) {
	s, mock := newMockStore(t)
	rows := sqlmock.NewRows([]string{"members", "categories", "community", "contacts", "leads"}).
		AddRow(120, 14, 37, 512, 9)
	mock.ExpectQuery(regexp.QuoteMeta("(SELECT COUNT(*) FROM members)")).WillReturnRows(rows)

	stats, err := s.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{Members: 120, Categories: 14, CommunityMembers: 37, ContactSubmissions: 512, BusinessLeads: 9}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}
