package dto

type CreateListingRequest struct {
	Title         string  `json:"title" form:"title" binding:"required,max=120"`
	Description   string  `json:"description" form:"description" binding:"max=2000"`
	ImageURL      string  `json:"image_url" form:"image_url" binding:"omitempty,url"`
	CategoryID    string  `json:"category_id" form:"category_id" binding:"omitempty,uuid"`
	StartingPrice float64 `json:"starting_price" form:"starting_price" binding:"required,gt=0"`
}

// ListingActionRequest is the form posted back to the listing page: either
// a bid or a watchlist toggle.
type ListingActionRequest struct {
	Action string  `json:"action" form:"action" binding:"required,oneof=bid watch unwatch"`
	Amount float64 `json:"amount" form:"amount" binding:"required_if=Action bid,omitempty,gt=0"`
}

type CommentRequest struct {
	Text string `json:"text" form:"text" binding:"required,max=2000"`
}
