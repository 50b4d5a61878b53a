package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/strawberrytart/auction-house/internal/middleware"
)

type BidHandler struct {
	bidding BiddingServiceInterface
}

func NewBidHandler(bidding BiddingServiceInterface) *BidHandler {
	return &BidHandler{bidding: bidding}
}

// MyBids handles GET /bids with the caller's bids, newest first
func (h *BidHandler) MyBids(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	bids, err := h.bidding.ListUserBids(userID.String())
	if err != nil {
		respondError(c, "MyBids", err)
		return
	}

	result := make([]gin.H, len(bids))
	for i, bid := range bids {
		entry := gin.H{
			"id":         bid.ID,
			"listing_id": bid.ListingID,
			"amount":     bid.Amount,
			"created_at": bid.CreatedAt.UTC().Format(time.RFC3339),
		}
		if bid.Listing.ID != uuid.Nil {
			entry["listing"] = gin.H{
				"id":        bid.Listing.ID,
				"title":     bid.Listing.Title,
				"is_active": bid.Listing.IsActive,
			}
		}
		result[i] = entry
	}

	c.JSON(http.StatusOK, gin.H{"bids": result})
}
