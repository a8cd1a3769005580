package handlers

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/01moynul/bizdirectory-golang/internal/contact"
	"github.com/01moynul/bizdirectory-golang/internal/models"
	"github.com/01moynul/bizdirectory-golang/internal/store"
)

func strPtr(s string) *string { return &s }

// memStore backs both the directory service and the admin handlers.
type memStore struct {
	mu         sync.Mutex
	categories []models.Category
	members    []models.Member
	community  []models.CommunityMember
	seo        map[string]*models.SEOMetadata
	upserts    int
	listErr    error
}

func newMemStore() *memStore {
	return &memStore{
		categories: []models.Category{
			{ID: "cat-legal", Name: "Legal", URL: "legal"},
			{ID: "cat-re", Name: "RealEstate", URL: "realestate"},
		},
		members: []models.Member{
			{ID: "m-amy", Firstname: "Amy", Lastname: "Lee", CategoryID: "cat-legal", Phone: "416-555-0199"},
			{ID: "m-jane", Name: strPtr("Doe Law"), Firstname: "Jane", Lastname: "Doe", CategoryID: "cat-legal",
				Phone: "416-555-0100", Email: strPtr("jane@doelaw.ca"), ServiceItem1: strPtr("Wills")},
			{ID: "m-john", Firstname: "John", Lastname: "Smith", CategoryID: "cat-re", Phone: "905-555-0111"},
		},
		community: []models.CommunityMember{
			{ID: "cm-1", Name: "Ravi Kumar", CategoryID: "cat-legal"},
		},
		seo: map[string]*models.SEOMetadata{
			"m-jane": {MemberID: "m-jane", Title: strPtr("Jane Doe, Toronto Wills Lawyer")},
		},
	}
}

func (s *memStore) ListCategories(context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]models.Category(nil), s.categories...), nil
}

func (s *memStore) ListMembers(context.Context) ([]models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]models.Member(nil), s.members...), nil
}

func (s *memStore) ListCommunityMembers(context.Context) ([]models.CommunityMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CommunityMember(nil), s.community...), nil
}

func (s *memStore) FindMembersByName(_ context.Context, categoryID, firstname, lastname string) ([]models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Member
	for _, m := range s.members {
		if m.CategoryID == categoryID && strings.EqualFold(m.Firstname, firstname) && strings.EqualFold(m.Lastname, lastname) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memStore) GetSEOMetadata(_ context.Context, memberID string) (*models.SEOMetadata, error) {
	if meta, ok := s.seo[memberID]; ok {
		return meta, nil
	}
	return nil, store.ErrNotFound
}

func (s *memStore) GetMember(_ context.Context, id string) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.members {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memStore) UpsertMember(_ context.Context, m *models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserts++
	for i := range s.members {
		if s.members[i].ID == m.ID {
			s.members[i] = *m
			return nil
		}
	}
	s.members = append(s.members, *m)
	return nil
}

func (s *memStore) DeleteMember(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memStore) CreateCategory(_ context.Context, c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, *c)
	return nil
}

func (s *memStore) UpdateCategory(_ context.Context, c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == c.ID {
			s.categories[i] = *c
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memStore) DeleteCategory(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memStore) CreateCommunityMember(_ context.Context, c *models.CommunityMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.community = append(s.community, *c)
	return nil
}

func (s *memStore) DeleteCommunityMember(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.community {
		if s.community[i].ID == id {
			s.community = append(s.community[:i], s.community[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memStore) DashboardStats(context.Context) (models.DashboardStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return models.DashboardStats{}, s.listErr
	}
	return models.DashboardStats{
		Members:          len(s.members),
		Categories:       len(s.categories),
		CommunityMembers: len(s.community),
	}, nil
}

// fakeContact records submissions and returns the configured error.
type fakeContact struct {
	SubmitErr error
	LeadErr   error

	submissions []contact.Submission
	leads       []contact.Lead
}

func (f *fakeContact) Submit(_ context.Context, sub contact.Submission) (contact.Confirmation, error) {
	f.submissions = append(f.submissions, sub)
	if f.SubmitErr != nil {
		return contact.Confirmation{}, f.SubmitErr
	}
	return contact.Confirmation{RecipientName: sub.RecipientName, FirstName: sub.FirstName}, nil
}

func (f *fakeContact) SubmitLead(_ context.Context, lead contact.Lead) error {
	f.leads = append(f.leads, lead)
	return f.LeadErr
}

// fakeUploader keeps uploaded objects in memory.
type fakeUploader struct {
	err     error
	objects map[string]string
}

func (f *fakeUploader) Upload(_ context.Context, key string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if f.objects == nil {
		f.objects = map[string]string{}
	}
	f.objects[key] = string(data)
	return "https://cdn.example.com/uploads/" + key, nil
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeRecorder) RecordEvent(action, outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, action+":"+outcome)
}

var errBoom = errors.New("boom")
