// Package itinerary generates multi-day Chiapas travel plans through the
// completion provider, persists them, and renders them as markdown or PDF.
package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/descubrechiapas/chiapas-guide/internal/app/llm"
	"github.com/descubrechiapas/chiapas-guide/internal/app/models"
	"github.com/descubrechiapas/chiapas-guide/internal/observability/metrics"
	"github.com/descubrechiapas/chiapas-guide/internal/pkg/config"
)

// GenerateParams mirrors the planner form: free-text knobs, validated for
// presence only.
type GenerateParams struct {
	ExperienceType string
	Duration       string
	Destinations   string
	Budget         string
}

type Service interface {
	Generate(ctx context.Context, params GenerateParams) (*models.SavedItinerary, error)
	Get(ctx context.Context, id uuid.UUID) (*models.SavedItinerary, error)
}

var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	client llm.Client
	repo   Repository
	cfg    config.OpenAIConfig
	logger *zap.Logger
}

func NewService(client llm.Client, repo Repository, cfg config.OpenAIConfig, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		client: client,
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

// Generate runs one JSON-mode completion, validates the plan shape, saves it
// and returns the stored row. Provider output that does not amount to a
// usable plan is a provider error, never a partial plan.
func (s *ServiceImpl) Generate(ctx context.Context, params GenerateParams) (*models.SavedItinerary, error) {
	if strings.TrimSpace(params.ExperienceType) == "" ||
		strings.TrimSpace(params.Duration) == "" ||
		strings.TrimSpace(params.Budget) == "" {
		return nil, models.ErrValidation
	}

	start := time.Now()
	content, err := s.client.ChatCompletion(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: plannerSystemPrompt},
			{Role: llm.RoleUser, Content: plannerPrompt(params)},
		},
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
		JSONMode:    true,
	})
	metrics.RecordProviderCall(ctx, "itinerary", time.Since(start), err)
	if err != nil {
		s.logger.Error("Itinerary completion failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", models.ErrProvider, err)
	}

	plan, err := parsePlan(content)
	if err != nil {
		s.logger.Error("Itinerary completion returned unusable plan", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", models.ErrProvider, err)
	}

	saved := &models.SavedItinerary{
		ID:             uuid.New(),
		Title:          plan.Title,
		Content:        *plan,
		ExperienceType: params.ExperienceType,
		Duration:       params.Duration,
		Budget:         params.Budget,
		Destinations:   params.Destinations,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.Save(ctx, saved); err != nil {
		return nil, fmt.Errorf("saving itinerary: %w", err)
	}

	metrics.RecordItineraryGenerated(ctx)
	return saved, nil
}

func (s *ServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.SavedItinerary, error) {
	return s.repo.Get(ctx, id)
}

// parsePlan accepts both the documented envelope {"itinerary": {...}} and a
// bare plan object, since models emit either.
func parsePlan(content string) (*models.Itinerary, error) {
	var envelope struct {
		Itinerary *models.Itinerary `json:"itinerary"`
	}
	plan := &models.Itinerary{}
	if err := json.Unmarshal([]byte(content), &envelope); err == nil && envelope.Itinerary != nil {
		plan = envelope.Itinerary
	} else if err := json.Unmarshal([]byte(content), plan); err != nil {
		return nil, fmt.Errorf("malformed completion payload: %w", err)
	}

	if strings.TrimSpace(plan.Title) == "" {
		return nil, fmt.Errorf("plan has no title")
	}
	if len(plan.Days) == 0 {
		return nil, fmt.Errorf("plan has no days")
	}
	for i, day := range plan.Days {
		if strings.TrimSpace(day.Title) == "" || strings.TrimSpace(day.Description) == "" {
			return nil, fmt.Errorf("day %d is missing title or description", i+1)
		}
	}
	return plan, nil
}
