package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/strawberrytart/auction-house/internal/database"
	"github.com/strawberrytart/auction-house/internal/handlers/dto"
	"github.com/strawberrytart/auction-house/internal/middleware"
	"github.com/strawberrytart/auction-house/internal/models"
)

type CommentHandler struct {
	db *database.Database
}

func NewCommentHandler(db *database.Database) *CommentHandler {
	return &CommentHandler{db: db}
}

// Create handles POST /listing/:id/comment. Comments are append-only and
// immutable once created.
func (h *CommentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	listingID := c.Param("id")

	var req dto.CommentRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindError(c, "Comment", err)
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment text is required"})
		return
	}

	listing, err := h.db.GetListing(listingID)
	if err != nil {
		respondError(c, "Comment", err)
		return
	}

	comment := &models.Comment{
		ListingID:   listing.ID,
		CommenterID: userID,
		Text:        text,
		CreatedAt:   time.Now(),
	}

	if err := h.db.SaveComment(comment); err != nil {
		respondError(c, "Comment", err)
		return
	}

	c.JSON(http.StatusCreated, formatCommentResponse(comment))
}
