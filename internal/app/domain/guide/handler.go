package guide

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/descubrechiapas/chiapas-guide/internal/app/models"
)

// genericProviderMessage is the only text the browser ever sees for an
// upstream failure; provider error detail stays in the server logs.
const genericProviderMessage = "Ocurrió un problema al procesar tu solicitud."

type Handlers struct {
	service Service
	logger  *zap.Logger
}

func NewHandlers(service Service, logger *zap.Logger) *Handlers {
	return &Handlers{
		service: service,
		logger:  logger,
	}
}

type tourGuideRequest struct {
	Question         string            `json:"question" binding:"required"`
	Intent           string            `json:"intent" binding:"omitempty,oneof=itinerary question followup"`
	Context          *string           `json:"context"`
	PreviousMessages []models.ChatTurn `json:"previousMessages" binding:"omitempty,dive"`
}

// HandleTourGuide serves POST /api/tour-guide.
func (h *Handlers) HandleTourGuide(c *gin.Context) {
	var req tourGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Solicitud inválida",
			"details": err.Error(),
		})
		return
	}

	params := AskParams{
		Question:         req.Question,
		Intent:           req.Intent,
		PreviousMessages: req.PreviousMessages,
	}
	if req.Context != nil {
		params.Context = *req.Context
	}

	answer, err := h.service.TourGuide(c.Request.Context(), params)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, answer)
}

type simpleChatbotRequest struct {
	Message string            `json:"message" binding:"required"`
	History []models.ChatTurn `json:"history" binding:"omitempty,dive"`
}

// HandleSimpleChatbot serves POST /api/simple-chatbot.
func (h *Handlers) HandleSimpleChatbot(c *gin.Context) {
	var req simpleChatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Datos de entrada inválidos",
			"details": err.Error(),
		})
		return
	}

	answer, err := h.service.SimpleChat(c.Request.Context(), req.Message, req.History)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, answer)
}

func (h *Handlers) respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	h.logger.Error("Dispatch request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Error interno del servidor",
		"message": genericProviderMessage,
	})
}
