package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/strawberrytart/auction-house/pkg/auth"
)

const UserIDKey = "userID"

// loginRedirect sends the browser to the login page with a return path, as
// required for every auth-gated route.
func loginRedirect(c *gin.Context) {
	next := url.QueryEscape(c.Request.URL.Path)
	c.Redirect(http.StatusFound, "/login?next="+next)
	c.Abort()
}

// RequireAuth validates the session token from the cookie (or Authorization
// header) and stores the user ID in the request context. Unauthenticated
// requests are redirected to /login with a next return path.
func RequireAuth(jwtManager *auth.JWTManager, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractToken(c.Request)
		if err != nil {
			loginRedirect(c)
			return
		}

		// Logged-out tokens are blacklisted until they expire
		exists, err := redisClient.Exists(context.Background(), "blacklist:"+token).Result()
		if err != nil || exists > 0 {
			loginRedirect(c)
			return
		}

		claims, err := jwtManager.Verify(token)
		if err != nil {
			loginRedirect(c)
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			loginRedirect(c)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth sets the user ID when a valid session is present and never
// blocks the request. Used on public pages that show per-user state, like
// the watch flag on a listing.
func OptionalAuth(jwtManager *auth.JWTManager, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractToken(c.Request)
		if err != nil {
			c.Next()
			return
		}

		exists, err := redisClient.Exists(context.Background(), "blacklist:"+token).Result()
		if err != nil || exists > 0 {
			c.Next()
			return
		}

		claims, err := jwtManager.Verify(token)
		if err != nil {
			c.Next()
			return
		}

		if userID, err := uuid.Parse(claims.Subject); err == nil {
			c.Set(UserIDKey, userID)
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's ID from the context, or
// false when the request is anonymous.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
