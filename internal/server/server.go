package server

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/strawberrytart/auction-house/internal/cache"
	"github.com/strawberrytart/auction-house/internal/config"
	"github.com/strawberrytart/auction-house/internal/database"
	"github.com/strawberrytart/auction-house/internal/handlers"
	"github.com/strawberrytart/auction-house/internal/services"
	"github.com/strawberrytart/auction-house/pkg/auth"
)

type Server struct {
	Router     *gin.Engine
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
}

func NewServer(cfg config.Config) (*Server, error) {
	dbConn := &database.Database{}
	if err := dbConn.Connect(cfg.DB.URL); err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis connect: %w", err)
	}

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)

	listingCache := cache.NewListingCache(rdb, cfg.Cache.TTL)
	listingSvc := services.NewListingService(dbConn, listingCache)
	biddingSvc := services.NewBiddingService(dbConn)

	authH := handlers.NewAuthHandler(dbConn, jwtMgr, rdb)
	listingH := handlers.NewListingHandler(listingSvc, biddingSvc, dbConn)
	watchlistH := handlers.NewWatchlistHandler(dbConn)
	commentH := handlers.NewCommentHandler(dbConn)
	bidH := handlers.NewBidHandler(biddingSvc)
	categoryH := handlers.NewCategoryHandler(listingSvc)

	router := newRouter(cfg, routerDeps{
		jwtManager: jwtMgr,
		redis:      rdb,
		auth:       authH,
		listings:   listingH,
		watchlist:  watchlistH,
		comments:   commentH,
		bids:       bidH,
		categories: categoryH,
	})

	return &Server{
		Router:     router,
		DB:         dbConn,
		Redis:      rdb,
		JWTManager: jwtMgr,
	}, nil
}

// Close releases the Redis connection. The gorm pool is left to the
// process exit.
func (s *Server) Close() error {
	return s.Redis.Close()
}
