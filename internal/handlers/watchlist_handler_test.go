package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strawberrytart/auction-house/internal/models"
)

// fakeWatchStore keeps watchers per listing with set semantics, matching
// the join table: adding twice stores one row, removing a non-member
// changes nothing.
type fakeWatchStore struct {
	listings map[string]models.Listing
	watchers map[string]map[string]bool
}

func newFakeWatchStore(listings ...models.Listing) *fakeWatchStore {
	s := &fakeWatchStore{
		listings: make(map[string]models.Listing),
		watchers: make(map[string]map[string]bool),
	}
	for _, l := range listings {
		s.listings[l.ID.String()] = l
	}
	return s
}

func (s *fakeWatchStore) AddWatcher(listingID, userID string) error {
	if s.watchers[listingID] == nil {
		s.watchers[listingID] = make(map[string]bool)
	}
	s.watchers[listingID][userID] = true
	return nil
}

func (s *fakeWatchStore) RemoveWatcher(listingID, userID string) error {
	delete(s.watchers[listingID], userID)
	return nil
}

func (s *fakeWatchStore) IsWatching(listingID, userID string) (bool, error) {
	return s.watchers[listingID][userID], nil
}

func (s *fakeWatchStore) GetWatchedListings(userID string) ([]models.Listing, error) {
	var watched []models.Listing
	for listingID, users := range s.watchers {
		if users[userID] {
			watched = append(watched, s.listings[listingID])
		}
	}
	return watched, nil
}

func (s *fakeWatchStore) GetListingComments(listingID string) ([]models.Comment, error) {
	return nil, nil
}

func (s *fakeWatchStore) GetListingBids(listingID string) ([]models.Bid, error) {
	return nil, nil
}

func (s *fakeWatchStore) GetWinningBid(listingID string) (*models.Bid, error) {
	return nil, nil
}

func (s *fakeWatchStore) watcherCount(listingID string) int {
	return len(s.watchers[listingID])
}

func TestListingHandler_Act_Watch(t *testing.T) {
	userID := uuid.New()
	listing := models.Listing{ID: uuid.New(), Title: "Road bike", IsActive: true}

	newRouter := func(store *fakeWatchStore) *gin.Engine {
		handler := NewListingHandler(nil, nil, store)
		router := gin.New()
		router.POST("/listing/:id", fakeSession(userID), handler.Act)
		return router
	}

	post := func(t *testing.T, router *gin.Engine, action string) *httptest.ResponseRecorder {
		t.Helper()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/listing/"+listing.ID.String(), jsonBody(t, map[string]any{"action": action}))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("watching twice equals watching once", func(t *testing.T) {
		store := newFakeWatchStore(listing)
		router := newRouter(store)

		for i := 0; i < 2; i++ {
			w := post(t, router, "watch")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, true, decodeBody(t, w)["watching"])
		}

		assert.Equal(t, 1, store.watcherCount(listing.ID.String()))
	})

	t.Run("unwatching a non-watched listing is a no-op", func(t *testing.T) {
		store := newFakeWatchStore(listing)
		router := newRouter(store)

		w := post(t, router, "unwatch")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, decodeBody(t, w)["watching"])
		assert.Equal(t, 0, store.watcherCount(listing.ID.String()))
	})

	t.Run("watch then unwatch removes the watcher", func(t *testing.T) {
		store := newFakeWatchStore(listing)
		router := newRouter(store)

		post(t, router, "watch")
		w := post(t, router, "unwatch")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, decodeBody(t, w)["watching"])
		assert.Equal(t, 0, store.watcherCount(listing.ID.String()))

		watching, err := store.IsWatching(listing.ID.String(), userID.String())
		require.NoError(t, err)
		assert.False(t, watching)
	})
}

func TestWatchlistHandler(t *testing.T) {
	userID := uuid.New()
	listing := models.Listing{ID: uuid.New(), Title: "Desk lamp", CurrentPrice: 15.00, IsActive: true}

	t.Run("lists watched listings", func(t *testing.T) {
		store := newFakeWatchStore(listing)
		require.NoError(t, store.AddWatcher(listing.ID.String(), userID.String()))

		handler := NewWatchlistHandler(store)
		router := gin.New()
		router.GET("/watchlist", fakeSession(userID), handler.List)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/watchlist", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(1), body["watchlist_count"])
		watchlist := body["watchlist"].([]any)
		require.Len(t, watchlist, 1)
		assert.Equal(t, "Desk lamp", watchlist[0].(map[string]any)["title"])
	})

	t.Run("removing a non-watched listing is a no-op", func(t *testing.T) {
		store := newFakeWatchStore(listing)

		handler := NewWatchlistHandler(store)
		router := gin.New()
		router.POST("/watchlist/:id/remove", fakeSession(userID), handler.Remove)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/watchlist/"+listing.ID.String()+"/remove", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, decodeBody(t, w)["watching"])
		assert.Equal(t, 0, store.watcherCount(listing.ID.String()))
	})
}
