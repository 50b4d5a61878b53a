package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/strawberrytart/auction-house/internal/auctionerrors"
	"github.com/strawberrytart/auction-house/internal/models"
)

// AuctionStore defines the bid and listing mutation operations the bidding
// service needs from the data store
type AuctionStore interface {
	GetListing(id string) (*models.Listing, error)
	PlaceBid(bid *models.Bid) error
	CloseListing(id string) (*models.Listing, error)
	GetUserBids(userID string) ([]models.Bid, error)
}

// BidResult is the outcome of a bid attempt. A rejected bid is a normal
// business outcome, not an error: Accepted is false and Message carries the
// blocking price.
type BidResult struct {
	Accepted     bool
	CurrentPrice float64
	Message      string
	Bid          *models.Bid
}

// BiddingService implements bid acceptance and auction closing
type BiddingService struct {
	store AuctionStore
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(store AuctionStore) *BiddingService {
	return &BiddingService{store: store}
}

// PlaceBid validates and records a user's bid on a listing. The amount must
// strictly exceed the current price, or be at least the starting price when
// the listing has no bids yet.
func (s *BiddingService) PlaceBid(listingID, bidderID string, amount float64) (BidResult, error) {
	if listingID == "" {
		return BidResult{}, fmt.Errorf("service: %w - missing listing ID", auctionerrors.ErrInvalidInput)
	}
	bidder, err := uuid.Parse(bidderID)
	if err != nil {
		return BidResult{}, fmt.Errorf("service: %w - invalid bidder ID", auctionerrors.ErrInvalidInput)
	}
	if !ValidAmount(amount) {
		return BidResult{}, fmt.Errorf("service: %w - amount must be positive with at most two decimal places", auctionerrors.ErrInvalidInput)
	}

	listing, err := s.store.GetListing(listingID)
	if err != nil {
		return BidResult{}, fmt.Errorf("service: failed to load listing %s: %w", listingID, err)
	}
	if !listing.IsActive {
		return BidResult{}, fmt.Errorf("service: listing %s: %w", listingID, auctionerrors.ErrListingClosed)
	}

	bid := models.Bid{
		ID:        uuid.New(),
		ListingID: listing.ID,
		BidderID:  bidder,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}

	err = s.store.PlaceBid(&bid)
	switch {
	case err == nil:
		return BidResult{
			Accepted:     true,
			CurrentPrice: amount,
			Message:      "Bid accepted",
			Bid:          &bid,
		}, nil
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return s.rejection(listingID, listing), nil
	default:
		return BidResult{}, fmt.Errorf("service: failed to record bid on listing %s by user %s: %w", listingID, bidderID, err)
	}
}

// rejection rebuilds the blocking price after a lost bid. The listing is
// re-read because a competing bid may have moved the price since our
// pre-check.
func (s *BiddingService) rejection(listingID string, seen *models.Listing) BidResult {
	current := seen
	if fresh, err := s.store.GetListing(listingID); err == nil {
		current = fresh
	}

	var message string
	if current.BidCount == 0 {
		message = fmt.Sprintf("Bid denied: amount must be at least as large as %.2f", current.CurrentPrice)
	} else {
		message = fmt.Sprintf("Bid denied: amount must be greater than %.2f", current.CurrentPrice)
	}

	return BidResult{
		Accepted:     false,
		CurrentPrice: current.CurrentPrice,
		Message:      message,
	}
}

// CloseAuction deactivates a listing and fixes its winner from the highest
// bid, if any. Any authenticated user may close any listing; the requester
// ID is taken so an owner-only rule can be added here.
func (s *BiddingService) CloseAuction(listingID, requesterID string) (*models.Listing, error) {
	if listingID == "" || requesterID == "" {
		return nil, fmt.Errorf("service: %w - missing listing or requester ID", auctionerrors.ErrInvalidInput)
	}

	listing, err := s.store.CloseListing(listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to close listing %s: %w", listingID, err)
	}
	return listing, nil
}

// ListUserBids returns all bids placed by a user, newest first
func (s *BiddingService) ListUserBids(userID string) ([]models.Bid, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}

	bids, err := s.store.GetUserBids(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for user %s: %w", userID, err)
	}
	return bids, nil
}

// ValidAmount reports whether v is a positive amount with currency
// precision (at most two decimal places).
func ValidAmount(v float64) bool {
	if v <= 0 {
		return false
	}
	cents := v * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}
