package session

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/descubrechiapas/chiapas-guide/internal/app/models"
)

type Handlers struct {
	store      *Store
	controller *Controller
	logger     *zap.Logger
}

func NewHandlers(store *Store, controller *Controller, logger *zap.Logger) *Handlers {
	return &Handlers{
		store:      store,
		controller: controller,
		logger:     logger,
	}
}

// HandleCreateSession serves POST /api/chat/sessions.
func (h *Handlers) HandleCreateSession(c *gin.Context) {
	sess := h.store.Create()
	c.JSON(http.StatusCreated, gin.H{
		"sessionId": sess.ID,
		"messages":  sess.Messages(),
	})
}

// HandleGetSession serves GET /api/chat/sessions/:id.
func (h *Handlers) HandleGetSession(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	sess, err := h.store.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionId": sess.ID,
		"context":   sess.Context(),
		"messages":  sess.Messages(),
	})
}

type submitRequest struct {
	Message string `json:"message"`
}

// HandleSubmitMessage serves POST /api/chat/sessions/:id/messages.
func (h *Handlers) HandleSubmitMessage(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Solicitud inválida",
			"details": err.Error(),
		})
		return
	}

	botMessage, err := h.controller.Submit(c.Request.Context(), id, req.Message)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": botMessage})
}

// HandleDeleteMessage serves DELETE /api/chat/sessions/:id/messages/:messageID.
func (h *Handlers) HandleDeleteMessage(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	messageID, err := uuid.Parse(c.Param("messageID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador de mensaje inválido"})
		return
	}
	if err := h.controller.DeleteMessage(id, messageID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleSuggestions serves GET /api/chat/sessions/:id/suggestions.
func (h *Handlers) HandleSuggestions(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	suggestions, err := h.controller.Suggestions(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

func (h *Handlers) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador de sesión inválido"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handlers) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "El mensaje no puede estar vacío"})
	case errors.Is(err, models.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "La sesión no existe o expiró"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "El mensaje no existe"})
	case errors.Is(err, models.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "Ya hay un mensaje en proceso para esta sesión"})
	default:
		h.logger.Error("Chat session request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error interno del servidor",
			"message": "Ocurrió un problema al procesar tu solicitud.",
		})
	}
}
