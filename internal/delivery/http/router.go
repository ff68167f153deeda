package http

import (
	"github.com/devmatch/devmatch-backend/internal/delivery/http/handler"
	"github.com/devmatch/devmatch-backend/internal/delivery/http/middleware"
	"github.com/devmatch/devmatch-backend/internal/domain"
	"github.com/devmatch/devmatch-backend/internal/realtime"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type Router struct {
	authHandler     *handler.AuthHandler
	discoverHandler *handler.DiscoverHandler
	swipeHandler    *handler.SwipeHandler
	matchHandler    *handler.MatchHandler
	chatHandler     *handler.ChatHandler
	realtimeHandler *handler.RealtimeHandler
	wsHandler       *realtime.Handler
	authMiddleware  *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	discoverHandler *handler.DiscoverHandler,
	swipeHandler *handler.SwipeHandler,
	matchHandler *handler.MatchHandler,
	chatHandler *handler.ChatHandler,
	realtimeHandler *handler.RealtimeHandler,
	wsHandler *realtime.Handler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:     authHandler,
		discoverHandler: discoverHandler,
		swipeHandler:    swipeHandler,
		matchHandler:    matchHandler,
		chatHandler:     chatHandler,
		realtimeHandler: realtimeHandler,
		wsHandler:       wsHandler,
		authMiddleware:  authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidators()

	router := gin.Default()

	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// Websocket endpoint stays outside /api/v1: the credential rides in
	// the query string, not the Authorization header.
	router.GET("/ws", r.wsHandler.Serve)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			protected.GET("/discover", r.discoverHandler.ListCandidates)
			protected.POST("/swipe", r.swipeHandler.CreateSwipe)
			protected.GET("/matches", r.matchHandler.ListMatches)
			protected.GET("/matches/:id/messages", r.chatHandler.ListMessages)
			protected.POST("/matches/:id/messages", r.chatHandler.SendMessage)
			protected.GET("/realtime/token", r.realtimeHandler.IssueToken)
		}
	}

	return router
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("swipeaction", func(fl validator.FieldLevel) bool {
			return domain.SwipeAction(fl.Field().String()).Valid()
		})
	}
}
