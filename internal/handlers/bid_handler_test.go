package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strawberrytart/auction-house/internal/models"
)

func TestBidHandler_MyBids(t *testing.T) {
	userID := uuid.New()

	t.Run("returns bids with listing summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		listingID := uuid.New()
		biddingSvc := NewMockBiddingServiceInterface(ctrl)
		biddingSvc.EXPECT().ListUserBids(userID.String()).Return([]models.Bid{
			{
				ID:        uuid.New(),
				ListingID: listingID,
				BidderID:  userID,
				Amount:    42.50,
				CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
				Listing:   models.Listing{ID: listingID, Title: "Mechanical keyboard", IsActive: true},
			},
		}, nil)

		handler := NewBidHandler(biddingSvc)
		router := gin.New()
		router.GET("/bids", fakeSession(userID), handler.MyBids)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/bids", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		bids := body["bids"].([]any)
		require.Len(t, bids, 1)

		entry := bids[0].(map[string]any)
		assert.Equal(t, 42.50, entry["amount"])
		assert.Equal(t, "2026-03-01T12:00:00Z", entry["created_at"])
		assert.Equal(t, "Mechanical keyboard", entry["listing"].(map[string]any)["title"])
	})

	t.Run("service failure returns 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		biddingSvc := NewMockBiddingServiceInterface(ctrl)
		biddingSvc.EXPECT().ListUserBids(userID.String()).Return(nil, assert.AnError)

		handler := NewBidHandler(biddingSvc)
		router := gin.New()
		router.GET("/bids", fakeSession(userID), handler.MyBids)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/bids", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
