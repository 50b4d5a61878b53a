package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/strawberrytart/auction-house/internal/auctionerrors"
	"github.com/strawberrytart/auction-house/internal/database"
	"github.com/strawberrytart/auction-house/internal/handlers/dto"
	"github.com/strawberrytart/auction-house/internal/models"
	"github.com/strawberrytart/auction-house/pkg/auth"
	"github.com/strawberrytart/auction-house/pkg/logger"
)

type AuthHandler struct {
	db         *database.Database
	jwtManager *auth.JWTManager
	redis      *redis.Client
}

func NewAuthHandler(db *database.Database, jwtMgr *auth.JWTManager, rdb *redis.Client) *AuthHandler {
	return &AuthHandler{db: db, jwtManager: jwtMgr, redis: rdb}
}

// RegisterPage handles GET /register
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "register with username, email, password and confirmation"})
}

// Register creates an account and logs the new user in
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindError(c, "Register", err)
		return
	}

	if req.Password != req.Confirmation {
		c.JSON(http.StatusBadRequest, gin.H{"error": "passwords must match"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot hash password"})
		return
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := h.db.SaveUser(user); err != nil {
		respondError(c, "Register", err)
		return
	}

	// registering logs the user in
	if err := h.setSessionCookie(c, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	logger.Info("Register: user registered", map[string]any{"user_id": user.ID.String(), "username": user.Username})
	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{"id": user.ID, "username": user.Username, "email": user.Email},
	})
}

// LoginPage handles GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "log in with username and password",
		"next":    c.Query("next"),
	})
}

// Login verifies credentials and opens a session
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindError(c, "Login", err)
		return
	}

	user, err := h.db.FindUserByUsername(req.Username)
	if err != nil {
		respondError(c, "Login", auctionerrors.ErrInvalidCredentials)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondError(c, "Login", auctionerrors.ErrInvalidCredentials)
		return
	}

	if err := h.setSessionCookie(c, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	next := req.Next
	if next == "" || next == "/login" {
		next = "/"
	}

	logger.Info("Login: session opened", map[string]any{"user_id": user.ID.String()})
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{"id": user.ID, "username": user.Username},
		"next": next,
	})
}

// Logout blacklists the session token in Redis until it expires and clears
// the cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	rawToken, err := auth.ExtractToken(c.Request)
	if err == nil {
		if exp, err := h.jwtManager.Expiry(rawToken); err == nil {
			ttl := time.Until(exp)
			h.redis.Set(context.Background(), "blacklist:"+rawToken, 1, ttl)
		}
	}

	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, user *models.User) error {
	token, err := h.jwtManager.Generate(user.ID.String())
	if err != nil {
		return err
	}
	maxAge := int(h.jwtManager.TokenDuration().Seconds())
	c.SetCookie(auth.SessionCookieName, token, maxAge, "/", "", false, true)
	return nil
}
