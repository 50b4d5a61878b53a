package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/strawberrytart/auction-house/internal/config"
	"github.com/strawberrytart/auction-house/internal/handlers"
	"github.com/strawberrytart/auction-house/internal/middleware"
	"github.com/strawberrytart/auction-house/pkg/auth"
)

type routerDeps struct {
	jwtManager *auth.JWTManager
	redis      *redis.Client
	auth       *handlers.AuthHandler
	listings   *handlers.ListingHandler
	watchlist  *handlers.WatchlistHandler
	comments   *handlers.CommentHandler
	bids       *handlers.BidHandler
	categories *handlers.CategoryHandler
}

func newRouter(cfg config.Config, deps routerDeps) *gin.Engine {
	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger)
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "Cookie"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": cfg.App.Version})
	})

	// Auth endpoints
	r.GET("/register", deps.auth.RegisterPage)
	r.POST("/register", deps.auth.Register)
	r.GET("/login", deps.auth.LoginPage)
	r.POST("/login", deps.auth.Login)
	r.GET("/logout", deps.auth.Logout)

	// Public browsing; a session, when present, adds per-user state
	optional := r.Group("/", middleware.OptionalAuth(deps.jwtManager, deps.redis))
	{
		optional.GET("/", deps.listings.Index)
		optional.GET("/listing/:id", deps.listings.Show)
		optional.GET("/categories", deps.categories.List)
		optional.GET("/categories/:id", deps.categories.Show)
	}

	// Everything that writes or is per-user requires a session
	authed := r.Group("/", middleware.RequireAuth(deps.jwtManager, deps.redis))
	{
		authed.GET("/create", deps.listings.New)
		authed.POST("/create", deps.listings.Create)
		authed.POST("/listing/:id", deps.listings.Act)
		authed.POST("/listing/:id/close", deps.listings.Close)
		authed.POST("/listing/:id/comment", deps.comments.Create)
		authed.GET("/watchlist", deps.watchlist.List)
		authed.POST("/watchlist/:id/remove", deps.watchlist.Remove)
		authed.GET("/bids", deps.bids.MyBids)
	}

	return r
}
