package auctionerrors

import "errors"

// Store-level errors
var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrNoBids           = errors.New("no bids found for listing")
)

// Business logic errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrBidTooLow     = errors.New("bid amount too low")
	ErrListingClosed = errors.New("listing is closed")
)

// Account errors
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid username and/or password")
)
