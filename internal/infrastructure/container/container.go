package container

import (
	"fmt"
	"time"

	"github.com/devmatch/devmatch-backend/internal/config"
	deliveryhttp "github.com/devmatch/devmatch-backend/internal/delivery/http"
	"github.com/devmatch/devmatch-backend/internal/delivery/http/handler"
	"github.com/devmatch/devmatch-backend/internal/delivery/http/middleware"
	"github.com/devmatch/devmatch-backend/internal/infrastructure/database"
	"github.com/devmatch/devmatch-backend/internal/infrastructure/server"
	"github.com/devmatch/devmatch-backend/internal/realtime"
	"github.com/devmatch/devmatch-backend/internal/repository/postgres"
	"github.com/devmatch/devmatch-backend/internal/security"
	"github.com/devmatch/devmatch-backend/internal/usecase/auth"
	"github.com/devmatch/devmatch-backend/internal/usecase/chat"
	"github.com/devmatch/devmatch-backend/internal/usecase/discover"
	"github.com/devmatch/devmatch-backend/internal/usecase/match"
	"github.com/devmatch/devmatch-backend/internal/usecase/swipe"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Hub    *realtime.Hub
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Presence degrades to "everyone offline" when Redis is missing;
	// the rest of the API keeps working.
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, presence tracking disabled")
		redisClient = nil
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	swipeRepo := postgres.NewSwipeRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	messageRepo := postgres.NewMessageRepository(db)

	// Security
	jwtManager := security.NewJWTManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	channelSigner := security.NewChannelSigner(cfg.Realtime.ChannelSecret, cfg.Realtime.TokenTTL)

	// Use cases
	authUseCase := auth.NewAuthUseCase(userRepo, jwtManager)
	discoverUseCase := discover.NewDiscoverUseCase(userRepo)
	swipeUseCase := swipe.NewSwipeUseCase(swipeRepo, matchRepo, userRepo)
	matchUseCase := match.NewMatchUseCase(matchRepo, userRepo)
	chatUseCase := chat.NewChatUseCase(messageRepo, matchRepo)

	// Realtime
	hub := realtime.NewHub()
	presence := realtime.NewPresence(redisClient, cfg.Realtime.PresenceTTL)
	wsHandler := realtime.NewHandler(hub, channelSigner, presence)

	// Handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	discoverHandler := handler.NewDiscoverHandler(discoverUseCase)
	swipeHandler := handler.NewSwipeHandler(swipeUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase, presence)
	chatHandler := handler.NewChatHandler(chatUseCase)
	realtimeHandler := handler.NewRealtimeHandler(matchUseCase, channelSigner)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	// Router and server
	router := deliveryhttp.NewRouter(
		authHandler,
		discoverHandler,
		swipeHandler,
		matchHandler,
		chatHandler,
		realtimeHandler,
		wsHandler,
		authMiddleware,
	)
	srv := server.NewServer(&cfg.Server, router.Setup())

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Hub:    hub,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing redis")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
