package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/strawberrytart/auction-house/internal/auctionerrors"
	"github.com/strawberrytart/auction-house/internal/cache"
	"github.com/strawberrytart/auction-house/internal/models"
	"golang.org/x/sync/singleflight"
)

// ListingStore defines the listing and category read/create operations the
// listing service needs from the data store
type ListingStore interface {
	CreateListing(listing *models.Listing) error
	GetListing(id string) (*models.Listing, error)
	GetActiveListings() ([]models.Listing, error)
	GetCategoryListings(categoryID string) ([]models.Listing, error)
	GetCategories() ([]models.Category, error)
	GetCategory(id string) (*models.Category, error)
}

// CreateListingInput carries the fields of a new listing.
type CreateListingInput struct {
	Title         string
	Description   string
	ImageURL      string
	CategoryID    string
	StartingPrice float64
}

// ListingService implements listing creation and browsing. If c is nil,
// caching is disabled.
type ListingService struct {
	store ListingStore
	cache *cache.ListingCache
	sf    singleflight.Group
}

// NewListingService creates a ListingService.
func NewListingService(store ListingStore, c *cache.ListingCache) *ListingService {
	return &ListingService{store: store, cache: c}
}

// Create validates and persists a new listing owned by ownerID. The display
// price starts at the starting price.
func (s *ListingService) Create(ctx context.Context, ownerID string, in CreateListingInput) (*models.Listing, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("service: %w - invalid owner ID", auctionerrors.ErrInvalidInput)
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("service: %w - title is required", auctionerrors.ErrInvalidInput)
	}
	if !ValidAmount(in.StartingPrice) {
		return nil, fmt.Errorf("service: %w - starting price must be positive with at most two decimal places", auctionerrors.ErrInvalidInput)
	}

	listing := models.Listing{
		ID:            uuid.New(),
		Title:         title,
		Description:   strings.TrimSpace(in.Description),
		ImageURL:      strings.TrimSpace(in.ImageURL),
		StartingPrice: in.StartingPrice,
		CurrentPrice:  in.StartingPrice,
		IsActive:      true,
		OwnerID:       owner,
	}

	if in.CategoryID != "" {
		category, err := s.store.GetCategory(in.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to resolve category %s: %w", in.CategoryID, err)
		}
		listing.CategoryID = &category.ID
	}

	if err := s.store.CreateListing(&listing); err != nil {
		return nil, fmt.Errorf("service: failed to create listing: %w", err)
	}

	s.InvalidateCache(ctx)
	return &listing, nil
}

// Get returns one listing by ID.
func (s *ListingService) Get(id string) (*models.Listing, error) {
	if id == "" {
		return nil, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidInput)
	}
	listing, err := s.store.GetListing(id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get listing %s: %w", id, err)
	}
	return listing, nil
}

// ListActive returns all active listings, newest first. Concurrent cache
// misses are collapsed into one store read.
func (s *ListingService) ListActive(ctx context.Context) ([]models.Listing, error) {
	if s.cache == nil {
		return s.store.GetActiveListings()
	}

	v, err, _ := s.sf.Do("active", func() (interface{}, error) {
		if listings, err := s.cache.GetActive(ctx); err == nil && listings != nil {
			return listings, nil
		}
		listings, err := s.store.GetActiveListings()
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetActive(ctx, listings)
		return listings, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Listing), nil
}

// ListByCategory returns a category's listings, newest first.
func (s *ListingService) ListByCategory(ctx context.Context, categoryID string) ([]models.Listing, error) {
	if _, err := s.store.GetCategory(categoryID); err != nil {
		return nil, fmt.Errorf("service: failed to resolve category %s: %w", categoryID, err)
	}

	if s.cache == nil {
		return s.store.GetCategoryListings(categoryID)
	}

	v, err, _ := s.sf.Do("category:"+categoryID, func() (interface{}, error) {
		if listings, err := s.cache.GetCategory(ctx, categoryID); err == nil && listings != nil {
			return listings, nil
		}
		listings, err := s.store.GetCategoryListings(categoryID)
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetCategory(ctx, categoryID, listings)
		return listings, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Listing), nil
}

// Categories returns all categories.
func (s *ListingService) Categories() ([]models.Category, error) {
	return s.store.GetCategories()
}

// InvalidateCache drops the cached listing pages. Called after every
// listing write: create, accepted bid, close.
func (s *ListingService) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Invalidate(ctx)
}
