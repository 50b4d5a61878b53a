package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/strawberrytart/auction-house/internal/auctionerrors"
	"github.com/strawberrytart/auction-house/internal/models"
)

// Tests Create
func TestListingService_Create(t *testing.T) {
	ownerID := uuid.NewString()
	categoryID := uuid.New()

	tests := []struct {
		name          string
		ownerID       string
		input         CreateListingInput
		mockSetup     func(store *MockListingStore)
		expectError   bool
		expectedError error
		validate      func(t *testing.T, listing *models.Listing)
	}{
		{
			name:    "valid_listing",
			ownerID: ownerID,
			input: CreateListingInput{
				Title:         "  Antique clock  ",
				Description:   "Chimes on the hour",
				StartingPrice: 25.00,
			},
			mockSetup: func(store *MockListingStore) {
				store.EXPECT().CreateListing(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, listing *models.Listing) {
				require.Equal(t, "Antique clock", listing.Title)
				require.Equal(t, 25.00, listing.StartingPrice)
				require.Equal(t, 25.00, listing.CurrentPrice)
				require.True(t, listing.IsActive)
				require.Nil(t, listing.WinnerID)
			},
		},
		{
			name:    "valid_listing_with_category",
			ownerID: ownerID,
			input: CreateListingInput{
				Title:         "Antique clock",
				CategoryID:    categoryID.String(),
				StartingPrice: 25.00,
			},
			mockSetup: func(store *MockListingStore) {
				store.EXPECT().GetCategory(categoryID.String()).
					Return(&models.Category{ID: categoryID, Name: "Home"}, nil)
				store.EXPECT().CreateListing(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, listing *models.Listing) {
				require.NotNil(t, listing.CategoryID)
				require.Equal(t, categoryID, *listing.CategoryID)
			},
		},
		{
			name:          "invalid_owner_id",
			ownerID:       "not-a-uuid",
			input:         CreateListingInput{Title: "Clock", StartingPrice: 25.00},
			mockSetup:     func(store *MockListingStore) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "blank_title",
			ownerID:       ownerID,
			input:         CreateListingInput{Title: "   ", StartingPrice: 25.00},
			mockSetup:     func(store *MockListingStore) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "non_positive_starting_price",
			ownerID:       ownerID,
			input:         CreateListingInput{Title: "Clock", StartingPrice: 0},
			mockSetup:     func(store *MockListingStore) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "starting_price_with_three_decimals",
			ownerID:       ownerID,
			input:         CreateListingInput{Title: "Clock", StartingPrice: 9.999},
			mockSetup:     func(store *MockListingStore) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:    "unknown_category",
			ownerID: ownerID,
			input: CreateListingInput{
				Title:         "Clock",
				CategoryID:    "missing",
				StartingPrice: 25.00,
			},
			mockSetup: func(store *MockListingStore) {
				store.EXPECT().GetCategory("missing").Return(nil, auctionerrors.ErrCategoryNotFound)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrCategoryNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockListingStore(ctrl)
			tc.mockSetup(store)
			service := NewListingService(store, nil)

			listing, err := service.Create(context.Background(), tc.ownerID, tc.input)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
				return
			}

			require.NoError(t, err)
			if tc.validate != nil {
				tc.validate(t, listing)
			}
		})
	}
}

func TestListingService_ListActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockListingStore(ctrl)
	service := NewListingService(store, nil)

	want := []models.Listing{{ID: uuid.New(), Title: "Radio"}}
	store.EXPECT().GetActiveListings().Return(want, nil)

	listings, err := service.ListActive(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, listings)
}

func TestListingService_ListByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockListingStore(ctrl)
	service := NewListingService(store, nil)

	t.Run("unknown_category", func(t *testing.T) {
		store.EXPECT().GetCategory("missing").Return(nil, auctionerrors.ErrCategoryNotFound)

		_, err := service.ListByCategory(context.Background(), "missing")
		require.ErrorIs(t, err, auctionerrors.ErrCategoryNotFound)
	})

	t.Run("returns_category_listings", func(t *testing.T) {
		categoryID := uuid.New()
		want := []models.Listing{{ID: uuid.New(), Title: "Radio"}}
		store.EXPECT().GetCategory(categoryID.String()).
			Return(&models.Category{ID: categoryID, Name: "Electronics"}, nil)
		store.EXPECT().GetCategoryListings(categoryID.String()).Return(want, nil)

		listings, err := service.ListByCategory(context.Background(), categoryID.String())
		require.NoError(t, err)
		require.Equal(t, want, listings)
	})
}

func TestListingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockListingStore(ctrl)
	service := NewListingService(store, nil)

	t.Run("empty_id", func(t *testing.T) {
		_, err := service.Get("")
		require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
	})

	t.Run("not_found", func(t *testing.T) {
		store.EXPECT().GetListing("missing").Return(nil, auctionerrors.ErrListingNotFound)

		_, err := service.Get("missing")
		require.ErrorIs(t, err, auctionerrors.ErrListingNotFound)
	})
}
