// Package routes wires handlers, services and repositories onto the router.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/descubrechiapas/chiapas-guide/internal/app/domain/guide"
	"github.com/descubrechiapas/chiapas-guide/internal/app/domain/itinerary"
	"github.com/descubrechiapas/chiapas-guide/internal/app/domain/places"
	"github.com/descubrechiapas/chiapas-guide/internal/app/domain/session"
	"github.com/descubrechiapas/chiapas-guide/internal/app/domain/subscription"
	"github.com/descubrechiapas/chiapas-guide/internal/app/llm"
	"github.com/descubrechiapas/chiapas-guide/internal/pkg/config"
)

type AppHandlers struct {
	Guide        *guide.Handlers
	Session      *session.Handlers
	Itinerary    *itinerary.Handlers
	Subscription *subscription.Handlers
}

func Setup(r *gin.Engine, cfg *config.Config, dbPool *pgxpool.Pool, log *zap.Logger) {
	handlers := setupDependencies(cfg, dbPool, log)
	setupRouter(r, handlers)
}

func setupDependencies(cfg *config.Config, dbPool *pgxpool.Pool, log *zap.Logger) *AppHandlers {
	client := llm.NewOpenAIClient(cfg.OpenAI, log)
	matcher := places.NewMatcher()

	guideService := guide.NewService(client, matcher, cfg.OpenAI, log)

	store := session.NewStore(cfg.Chat.SessionTTL, log)
	controller := session.NewController(store, guideService, cfg.Chat.SubmitTimeout, cfg.Chat.HistoryWindow, log)

	itineraryRepo := itinerary.NewRepository(dbPool, log)
	itineraryService := itinerary.NewService(client, itineraryRepo, cfg.OpenAI, log)

	subscriptionRepo := subscription.NewRepository(dbPool, log)

	return &AppHandlers{
		Guide:        guide.NewHandlers(guideService, log),
		Session:      session.NewHandlers(store, controller, log),
		Itinerary:    itinerary.NewHandlers(itineraryService, log),
		Subscription: subscription.NewHandlers(subscriptionRepo, log),
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/tour-guide", h.Guide.HandleTourGuide)
		api.POST("/simple-chatbot", h.Guide.HandleSimpleChatbot)

		api.POST("/itinerary/generate", h.Itinerary.HandleGenerate)
		api.POST("/itinerary/export/markdown", h.Itinerary.HandleExportMarkdown)
		api.POST("/itinerary/export/pdf", h.Itinerary.HandleExportPDF)
		api.GET("/itinerary/:id", h.Itinerary.HandleGet)
		api.GET("/itinerary/:id/markdown", h.Itinerary.HandleGetMarkdown)
		api.GET("/itinerary/:id/pdf", h.Itinerary.HandleGetPDF)

		api.POST("/subscribe", h.Subscription.HandleSubscribe)

		chat := api.Group("/chat/sessions")
		{
			chat.POST("", h.Session.HandleCreateSession)
			chat.GET("/:id", h.Session.HandleGetSession)
			chat.POST("/:id/messages", h.Session.HandleSubmitMessage)
			chat.DELETE("/:id/messages/:messageID", h.Session.HandleDeleteMessage)
			chat.GET("/:id/suggestions", h.Session.HandleSuggestions)
		}
	}
}
