package subscription

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/descubrechiapas/chiapas-guide/internal/observability/metrics"
)

type Handlers struct {
	repo   Repository
	logger *zap.Logger
}

func NewHandlers(repo Repository, logger *zap.Logger) *Handlers {
	return &Handlers{
		repo:   repo,
		logger: logger,
	}
}

type subscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// HandleSubscribe serves POST /api/subscribe.
func (h *Handlers) HandleSubscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Correo electrónico inválido",
		})
		return
	}

	metrics.RecordSubscription(c.Request.Context())

	if _, err := h.repo.Upsert(c.Request.Context(), req.Email); err != nil {
		h.logger.Error("Failed to store subscription", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "No se pudo completar la suscripción, intenta nuevamente.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "¡Gracias por suscribirte al boletín de Chiapas!",
	})
}
