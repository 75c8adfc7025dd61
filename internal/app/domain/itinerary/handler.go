package itinerary

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/descubrechiapas/chiapas-guide/internal/app/models"
)

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

type generateRequest struct {
	ExperienceType string `json:"experienceType" binding:"required"`
	Duration       string `json:"duration" binding:"required"`
	Destinations   string `json:"destinations"`
	Budget         string `json:"budget" binding:"required"`
}

// HandleGenerate serves POST /api/itinerary/generate.
func (h *Handlers) HandleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Solicitud inválida",
			"details": err.Error(),
		})
		return
	}

	saved, err := h.service.Generate(c.Request.Context(), GenerateParams{
		ExperienceType: req.ExperienceType,
		Duration:       req.Duration,
		Destinations:   req.Destinations,
		Budget:         req.Budget,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        saved.ID,
		"itinerary": saved.Content,
	})
}

// HandleGet serves GET /api/itinerary/:id.
func (h *Handlers) HandleGet(c *gin.Context) {
	saved, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, saved)
}

// HandleGetMarkdown serves GET /api/itinerary/:id/markdown.
func (h *Handlers) HandleGetMarkdown(c *gin.Context) {
	saved, ok := h.lookup(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=itinerario-%s.md", saved.ID))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(RenderMarkdown(saved.Content)))
}

// HandleGetPDF serves GET /api/itinerary/:id/pdf.
func (h *Handlers) HandleGetPDF(c *gin.Context) {
	saved, ok := h.lookup(c)
	if !ok {
		return
	}
	pdf, err := RenderPDF(saved.Content)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=itinerario-%s.pdf", saved.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// HandleExportMarkdown serves POST /api/itinerary/export/markdown for plans
// the client still holds unsaved.
func (h *Handlers) HandleExportMarkdown(c *gin.Context) {
	plan, ok := h.bindPlan(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", "attachment; filename=itinerario.md")
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(RenderMarkdown(plan)))
}

// HandleExportPDF serves POST /api/itinerary/export/pdf.
func (h *Handlers) HandleExportPDF(c *gin.Context) {
	plan, ok := h.bindPlan(c)
	if !ok {
		return
	}
	pdf, err := RenderPDF(plan)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=itinerario.pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handlers) lookup(c *gin.Context) (*models.SavedItinerary, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador de itinerario inválido"})
		return nil, false
	}
	saved, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return nil, false
	}
	return saved, true
}

func (h *Handlers) bindPlan(c *gin.Context) (models.Itinerary, bool) {
	var plan models.Itinerary
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Solicitud inválida",
			"details": err.Error(),
		})
		return models.Itinerary{}, false
	}
	if plan.Title == "" || len(plan.Days) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El itinerario debe incluir título y días"})
		return models.Itinerary{}, false
	}
	return plan, true
}

func (h *Handlers) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "El itinerario no existe"})
	default:
		h.logger.Error("Itinerary request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error interno del servidor",
			"message": "Ocurrió un problema al procesar tu solicitud.",
		})
	}
}
