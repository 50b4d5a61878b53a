package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/strawberrytart/auction-house/internal/handlers/dto"
	"github.com/strawberrytart/auction-house/internal/middleware"
	"github.com/strawberrytart/auction-house/internal/models"
	"github.com/strawberrytart/auction-house/internal/services"
	"github.com/strawberrytart/auction-house/pkg/logger"
)

type ListingServiceInterface interface {
	Create(ctx context.Context, ownerID string, in services.CreateListingInput) (*models.Listing, error)
	Get(id string) (*models.Listing, error)
	ListActive(ctx context.Context) ([]models.Listing, error)
	ListByCategory(ctx context.Context, categoryID string) ([]models.Listing, error)
	Categories() ([]models.Category, error)
	InvalidateCache(ctx context.Context)
}

type BiddingServiceInterface interface {
	PlaceBid(listingID, bidderID string, amount float64) (services.BidResult, error)
	CloseAuction(listingID, requesterID string) (*models.Listing, error)
	ListUserBids(userID string) ([]models.Bid, error)
}

// ListingPageStore covers the per-listing reads and watchlist writes the
// listing page needs from the data store.
type ListingPageStore interface {
	GetListingComments(listingID string) ([]models.Comment, error)
	GetListingBids(listingID string) ([]models.Bid, error)
	GetWinningBid(listingID string) (*models.Bid, error)
	AddWatcher(listingID, userID string) error
	RemoveWatcher(listingID, userID string) error
	IsWatching(listingID, userID string) (bool, error)
}

type ListingHandler struct {
	listings ListingServiceInterface
	bidding  BiddingServiceInterface
	db       ListingPageStore
}

func NewListingHandler(listings ListingServiceInterface, bidding BiddingServiceInterface, db ListingPageStore) *ListingHandler {
	return &ListingHandler{listings: listings, bidding: bidding, db: db}
}

// Index handles GET / with all active listings, newest first
func (h *ListingHandler) Index(c *gin.Context) {
	listings, err := h.listings.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, "Index", err)
		return
	}

	result := make([]gin.H, len(listings))
	for i, listing := range listings {
		result[i] = formatListingResponse(&listing)
	}

	c.JSON(http.StatusOK, gin.H{"listings": result})
}

// Show handles GET /listing/:id
func (h *ListingHandler) Show(c *gin.Context) {
	listingID := c.Param("id")

	listing, err := h.listings.Get(listingID)
	if err != nil {
		respondError(c, "Show", err)
		return
	}

	comments, err := h.db.GetListingComments(listingID)
	if err != nil {
		respondError(c, "Show", err)
		return
	}

	response := formatListingResponse(listing)
	response["comments"] = formatComments(comments)

	bids, err := h.db.GetListingBids(listingID)
	if err != nil {
		respondError(c, "Show", err)
		return
	}
	response["bids"] = formatBids(bids)

	if !listing.IsActive {
		if winning, err := h.db.GetWinningBid(listingID); err == nil {
			response["winning_bid"] = gin.H{"amount": winning.Amount, "bidder_id": winning.BidderID}
		}
	}

	// per-user state when a session is present
	if userID, ok := middleware.CurrentUserID(c); ok {
		watching, err := h.db.IsWatching(listingID, userID.String())
		if err == nil {
			response["watching"] = watching
		}
		response["is_owner"] = listing.OwnerID == userID
	}

	c.JSON(http.StatusOK, response)
}

// Act handles POST /listing/:id: either a bid or a watchlist toggle,
// selected by the action field
func (h *ListingHandler) Act(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	listingID := c.Param("id")

	var req dto.ListingActionRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindError(c, "Act", err)
		return
	}

	switch req.Action {
	case "bid":
		h.placeBid(c, listingID, userID, req.Amount)
	case "watch":
		if err := h.db.AddWatcher(listingID, userID.String()); err != nil {
			respondError(c, "Act", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"watching": true})
	case "unwatch":
		if err := h.db.RemoveWatcher(listingID, userID.String()); err != nil {
			respondError(c, "Act", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"watching": false})
	}
}

func (h *ListingHandler) placeBid(c *gin.Context, listingID string, userID uuid.UUID, amount float64) {
	result, err := h.bidding.PlaceBid(listingID, userID.String(), amount)
	if err != nil {
		respondError(c, "placeBid", err)
		return
	}

	if result.Accepted {
		h.listings.InvalidateCache(c.Request.Context())
		logger.Info("placeBid: bid accepted", map[string]any{
			"listing_id": listingID,
			"user_id":    userID.String(),
			"amount":     amount,
		})
	}

	// a rejected bid is a business outcome shown inline, not an error
	c.JSON(http.StatusOK, gin.H{
		"accepted":      result.Accepted,
		"current_price": result.CurrentPrice,
		"message":       result.Message,
	})
}

// New handles GET /create with the data needed for the listing form
func (h *ListingHandler) New(c *gin.Context) {
	categories, err := h.listings.Categories()
	if err != nil {
		respondError(c, "New", err)
		return
	}

	result := make([]gin.H, len(categories))
	for i, category := range categories {
		result[i] = gin.H{"id": category.ID, "name": category.Name}
	}

	c.JSON(http.StatusOK, gin.H{"categories": result})
}

// Create handles POST /create
func (h *ListingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.CreateListingRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindError(c, "Create", err)
		return
	}

	listing, err := h.listings.Create(c.Request.Context(), userID.String(), services.CreateListingInput{
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		CategoryID:    req.CategoryID,
		StartingPrice: req.StartingPrice,
	})
	if err != nil {
		respondError(c, "Create", err)
		return
	}

	logger.Info("Create: listing created", map[string]any{
		"listing_id": listing.ID.String(),
		"owner_id":   userID.String(),
	})
	c.JSON(http.StatusCreated, formatListingResponse(listing))
}

// Close handles POST /listing/:id/close
func (h *ListingHandler) Close(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	listingID := c.Param("id")

	listing, err := h.bidding.CloseAuction(listingID, userID.String())
	if err != nil {
		respondError(c, "Close", err)
		return
	}

	h.listings.InvalidateCache(c.Request.Context())
	logger.Info("Close: auction closed", map[string]any{
		"listing_id": listingID,
		"user_id":    userID.String(),
	})
	c.JSON(http.StatusOK, formatListingResponse(listing))
}

// formatListingResponse formats a listing for display. CurrentPrice is the
// derived display price: the highest accepted bid, or the starting price
// when no bids exist.
func formatListingResponse(listing *models.Listing) gin.H {
	response := gin.H{
		"id":             listing.ID,
		"title":          listing.Title,
		"description":    listing.Description,
		"image_url":      listing.ImageURL,
		"starting_price": listing.StartingPrice,
		"display_price":  listing.CurrentPrice,
		"bid_count":      listing.BidCount,
		"is_active":      listing.IsActive,
		"owner_id":       listing.OwnerID,
		"created_at":     listing.CreatedAt,
	}

	if listing.Category != nil {
		response["category"] = gin.H{"id": listing.Category.ID, "name": listing.Category.Name}
	} else if listing.CategoryID != nil {
		response["category_id"] = listing.CategoryID
	}

	if listing.WinnerID != nil {
		response["winner_id"] = listing.WinnerID
		if listing.Winner != nil {
			response["winner"] = gin.H{"id": listing.Winner.ID, "username": listing.Winner.Username}
		}
	}

	if listing.Owner.ID != uuid.Nil {
		response["owner"] = gin.H{"id": listing.Owner.ID, "username": listing.Owner.Username}
	}

	return response
}

func formatBids(bids []models.Bid) []gin.H {
	result := make([]gin.H, len(bids))
	for i, bid := range bids {
		entry := gin.H{
			"id":         bid.ID,
			"amount":     bid.Amount,
			"created_at": bid.CreatedAt,
		}
		if bid.Bidder.ID != uuid.Nil {
			entry["bidder"] = gin.H{"id": bid.Bidder.ID, "username": bid.Bidder.Username}
		} else {
			entry["bidder_id"] = bid.BidderID
		}
		result[i] = entry
	}
	return result
}

func formatComments(comments []models.Comment) []gin.H {
	result := make([]gin.H, len(comments))
	for i, comment := range comments {
		result[i] = formatCommentResponse(&comment)
	}
	return result
}

func formatCommentResponse(comment *models.Comment) gin.H {
	response := gin.H{
		"id":         comment.ID,
		"listing_id": comment.ListingID,
		"text":       comment.Text,
		"created_at": comment.CreatedAt,
	}
	if comment.Commenter.ID != uuid.Nil {
		response["commenter"] = gin.H{"id": comment.Commenter.ID, "username": comment.Commenter.Username}
	} else {
		response["commenter_id"] = comment.CommenterID
	}
	return response
}
