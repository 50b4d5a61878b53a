package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	listings ListingServiceInterface
}

func NewCategoryHandler(listings ListingServiceInterface) *CategoryHandler {
	return &CategoryHandler{listings: listings}
}

// List handles GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.listings.Categories()
	if err != nil {
		respondError(c, "Categories", err)
		return
	}

	result := make([]gin.H, len(categories))
	for i, category := range categories {
		result[i] = gin.H{"id": category.ID, "name": category.Name}
	}

	c.JSON(http.StatusOK, gin.H{"categories": result})
}

// Show handles GET /categories/:id with the category's listings, newest
// first
func (h *CategoryHandler) Show(c *gin.Context) {
	categoryID := c.Param("id")

	listings, err := h.listings.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, "Category", err)
		return
	}

	result := make([]gin.H, len(listings))
	for i, listing := range listings {
		result[i] = formatListingResponse(&listing)
	}

	c.JSON(http.StatusOK, gin.H{"listings": result})
}
