// Package directory implements the public listing side of the directory:
// loading the collections, filtering/search, and resolving profile routes.
package directory

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/01moynul/bizdirectory-golang/internal/models"
	"github.com/01moynul/bizdirectory-golang/internal/store"
)

// Store is the read side of the directory store used by the listing pages.
type Store interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListMembers(ctx context.Context) ([]models.Member, error)
	ListCommunityMembers(ctx context.Context) ([]models.CommunityMember, error)
	FindMembersByName(ctx context.Context, categoryID, firstname, lastname string) ([]models.Member, error)
	GetSEOMetadata(ctx context.Context, memberID string) (*models.SEOMetadata, error)
}

// Snapshot is one load of the three listing collections.
type Snapshot struct {
	Categories []models.Category
	Members    []models.Member
	Community  []models.CommunityMember
}

// Listing is the data behind a category page.
type Listing struct {
	Category  models.Category
	Members   []models.Member
	Community []models.CommunityMember
}

// Resolution is the outcome of resolving a profile route. Either Member is
// set, or Redirect holds the category listing path to send the visitor to.
type Resolution struct {
	Category models.Category
	Member   *models.Member
	Redirect string
}

// Found reports whether the route resolved to a member.
func (r Resolution) Found() bool {
	return r.Member != nil
}

type Service struct {
	store   Store
	logger  *zap.Logger
	shuffle Shuffler
}

func NewService(s Store, logger *zap.Logger) *Service {
	return &Service{store: s, logger: logger, shuffle: RandomShuffle}
}

// WithShuffler replaces the listing shuffle, mainly for tests.
func (s *Service) WithShuffler(fn Shuffler) *Service {
	s.shuffle = fn
	return s
}

// Snapshot loads categories, members and community members concurrently.
// A failed fetch is logged and leaves that collection empty; there is no retry.
func (s *Service) Snapshot(ctx context.Context) Snapshot {
	snap := Snapshot{
		Categories: []models.Category{},
		Members:    []models.Member{},
		Community:  []models.CommunityMember{},
	}

	var g errgroup.Group
	g.Go(func() error {
		cats, err := s.store.ListCategories(ctx)
		if err != nil {
			s.logger.Error("Error fetching categories", zap.Error(err))
			return nil
		}
		snap.Categories = cats
		return nil
	})
	g.Go(func() error {
		members, err := s.store.ListMembers(ctx)
		if err != nil {
			s.logger.Error("Error fetching members", zap.Error(err))
			return nil
		}
		snap.Members = members
		return nil
	})
	g.Go(func() error {
		community, err := s.store.ListCommunityMembers(ctx)
		if err != nil {
			s.logger.Error("Error fetching community members", zap.Error(err))
			return nil
		}
		snap.Community = community
		return nil
	})
	_ = g.Wait()

	return snap
}

// Categories loads the category list, degrading to empty on failure.
func (s *Service) Categories(ctx context.Context) []models.Category {
	cats, err := s.store.ListCategories(ctx)
	if err != nil {
		s.logger.Error("Error fetching categories", zap.Error(err))
		return []models.Category{}
	}
	return cats
}

// Search runs the global free-text search over a fresh snapshot.
func (s *Service) Search(ctx context.Context, query string) (Snapshot, []models.Member) {
	snap := s.Snapshot(ctx)
	return snap, Filter(snap.Members, snap.Categories, "", query, nil)
}

// CategoryListing builds a category page. ok is false when the category URL is unknown.
func (s *Service) CategoryListing(ctx context.Context, categoryURL string) (Listing, []models.Category, bool) {
	snap := s.Snapshot(ctx)
	cat, ok := FindCategoryByURL(snap.Categories, categoryURL)
	if !ok {
		return Listing{}, snap.Categories, false
	}
	return Listing{
		Category:  cat,
		Members:   Filter(snap.Members, snap.Categories, categoryURL, "", s.shuffle),
		Community: CommunityFor(snap.Community, cat.ID),
	}, snap.Categories, true
}

// ResolveMember resolves /{categoryURL}/{memberSlug} to a member.
//
// A malformed slug redirects without touching the store. Otherwise the
// categories are loaded first, then the member is looked up case-insensitively
// within the category. Every not-found outcome redirects to the listing.
func (s *Service) ResolveMember(ctx context.Context, categoryURL, memberSlug string) Resolution {
	notFound := Resolution{Redirect: CategoryPath(categoryURL)}

	firstname, lastname, ok := ParseMemberSlug(memberSlug)
	if !ok {
		return notFound
	}

	cat, ok := FindCategoryByURL(s.Categories(ctx), categoryURL)
	if !ok {
		return notFound
	}
	notFound.Category = cat

	matches, err := s.store.FindMembersByName(ctx, cat.ID, firstname, lastname)
	if err != nil {
		s.logger.Error("Error fetching member details",
			zap.String("category", categoryURL),
			zap.String("member", memberSlug),
			zap.Error(err))
		return notFound
	}
	if len(matches) != 1 {
		return notFound
	}

	return Resolution{Category: cat, Member: &matches[0]}
}

// SEOOverride fetches the optional metadata override of a member.
// A missing row is normal and yields nil.
func (s *Service) SEOOverride(ctx context.Context, memberID string) *models.SEOMetadata {
	meta, err := s.store.GetSEOMetadata(ctx, memberID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Error("Error fetching SEO metadata", zap.String("memberId", memberID), zap.Error(err))
		}
		return nil
	}
	return meta
}
