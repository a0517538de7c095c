// README: HTTP router registration.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"journey/internal/http/handlers"
	"journey/internal/http/middleware"
	"journey/internal/modules/conversation"
	"journey/internal/modules/itinerary"
	"journey/internal/modules/tour"
)

type RouterDeps struct {
	Logger        *slog.Logger
	Redis         *redis.Client
	RatePerMinute int

	Caller       handlers.Asker
	Conversation *conversation.Service
	Itinerary    *itinerary.Service
	Tour         *tour.Service
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(
		middleware.Logging(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORS(),
	)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "journey-backend"})
	})

	limited := middleware.RateLimit(deps.Redis, deps.RatePerMinute, deps.Logger)

	chatHandler := handlers.NewChatHandler(deps.Caller, deps.Conversation)
	r.POST("/chat", limited, chatHandler.Chat)
	r.POST("/legacy_chat", limited, chatHandler.LegacyChat)

	itineraryHandler := handlers.NewItineraryHandler(deps.Itinerary)
	r.POST("/plan_trip", itineraryHandler.PlanTrip)

	tourHandler := handlers.NewTourHandler(deps.Tour)
	r.POST("/tours", tourHandler.Create)
	r.GET("/tours", tourHandler.List)
	r.GET("/tours/:id", tourHandler.Get)

	return r
}
