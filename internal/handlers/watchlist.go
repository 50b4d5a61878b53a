package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/strawberrytart/auction-house/internal/middleware"
	"github.com/strawberrytart/auction-house/internal/models"
)

// WatchlistStore covers the watchlist reads and removal the watchlist page
// needs from the data store.
type WatchlistStore interface {
	GetWatchedListings(userID string) ([]models.Listing, error)
	RemoveWatcher(listingID, userID string) error
}

type WatchlistHandler struct {
	db WatchlistStore
}

func NewWatchlistHandler(db WatchlistStore) *WatchlistHandler {
	return &WatchlistHandler{db: db}
}

// List handles GET /watchlist
func (h *WatchlistHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	listings, err := h.db.GetWatchedListings(userID.String())
	if err != nil {
		respondError(c, "Watchlist", err)
		return
	}

	result := make([]gin.H, len(listings))
	for i, listing := range listings {
		result[i] = formatListingResponse(&listing)
	}

	c.JSON(http.StatusOK, gin.H{
		"watchlist":       result,
		"watchlist_count": len(result),
	})
}

// Remove handles POST /watchlist/:id/remove. Removing a listing that is
// not on the watchlist is a no-op.
func (h *WatchlistHandler) Remove(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	listingID := c.Param("id")

	if err := h.db.RemoveWatcher(listingID, userID.String()); err != nil {
		respondError(c, "WatchlistRemove", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"watching": false})
}
