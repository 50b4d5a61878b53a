package dto

type RegisterRequest struct {
	Username     string `json:"username" form:"username" binding:"required,min=3,max=50"`
	Email        string `json:"email" form:"email" binding:"required,email"`
	Password     string `json:"password" form:"password" binding:"required,min=8,max=72"`
	Confirmation string `json:"confirmation" form:"confirmation" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	// Next is the return path to continue to after a successful login.
	Next string `json:"next" form:"next"`
}
