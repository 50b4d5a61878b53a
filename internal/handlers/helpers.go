package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/strawberrytart/auction-house/internal/auctionerrors"
	"github.com/strawberrytart/auction-house/pkg/logger"
)

// handleBindError sends a standardized error for binding failures
func handleBindError(c *gin.Context, handlerName string, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
	logger.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// mapErrorToHTTP maps domain/service errors to an HTTP status and message
func mapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, auctionerrors.ErrCategoryNotFound):
		return http.StatusNotFound, "category not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, auctionerrors.ErrListingClosed):
		return http.StatusConflict, "listing is closed"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrUsernameTaken):
		return http.StatusConflict, "username already taken"
	case errors.Is(err, auctionerrors.ErrEmailTaken):
		return http.StatusConflict, "email already taken"
	case errors.Is(err, auctionerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid username and/or password"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// respondError maps err and writes it, logging server-side failures
func respondError(c *gin.Context, handlerName string, err error) {
	status, message := mapErrorToHTTP(err)
	if status == http.StatusInternalServerError {
		logger.Error(handlerName+": "+message, map[string]any{"error": err.Error()})
	} else {
		logger.Warn(handlerName+": "+message, map[string]any{"error": err.Error()})
	}
	c.JSON(status, gin.H{"error": message})
}
