// Package guide dispatches visitor questions to the completion provider and
// enriches the answers with map attractions.
package guide

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/descubrechiapas/chiapas-guide/internal/app/domain/places"
	"github.com/descubrechiapas/chiapas-guide/internal/app/llm"
	"github.com/descubrechiapas/chiapas-guide/internal/app/models"
	"github.com/descubrechiapas/chiapas-guide/internal/observability/metrics"
	"github.com/descubrechiapas/chiapas-guide/internal/pkg/config"
)

const (
	IntentItinerary = "itinerary"
	IntentQuestion  = "question"
	IntentFollowup  = "followup"
)

// AskParams carries one tour-guide turn. Context is the derived
// conversation-context string from a previous exchange, or empty.
type AskParams struct {
	Question         string
	Intent           string
	Context          string
	PreviousMessages []models.ChatTurn
}

// Answer is the dispatch envelope: the assistant text plus 1..3 verified
// attractions for the map.
type Answer struct {
	Response    string              `json:"response"`
	Attractions []models.Attraction `json:"attractions"`
}

type Service interface {
	TourGuide(ctx context.Context, params AskParams) (*Answer, error)
	SimpleChat(ctx context.Context, message string, history []models.ChatTurn) (*Answer, error)
}

var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	client  llm.Client
	matcher *places.Matcher
	cfg     config.OpenAIConfig
	logger  *zap.Logger
}

func NewService(client llm.Client, matcher *places.Matcher, cfg config.OpenAIConfig, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		client:  client,
		matcher: matcher,
		cfg:     cfg,
		logger:  logger,
	}
}

// TourGuide answers one question in structured JSON mode. The attraction
// list always comes from the matcher, never from the model, so coordinates
// stay verified.
func (s *ServiceImpl) TourGuide(ctx context.Context, params AskParams) (*Answer, error) {
	if strings.TrimSpace(params.Question) == "" {
		return nil, models.ErrValidation
	}

	messages := []llm.Message{{Role: llm.RoleSystem, Content: tourGuideSystemPrompt()}}
	if params.Context != "" {
		if prompt := contextPrompt(params.Intent, params.Context); prompt != "" {
			messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: prompt})
		}
	}
	messages = append(messages, historyMessages(params.PreviousMessages)...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: params.Question})

	content, err := s.complete(ctx, llm.Request{
		Messages:    messages,
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
		JSONMode:    true,
	}, "tour_guide")
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil || strings.TrimSpace(parsed.Response) == "" {
		s.logger.Error("Tour guide completion returned unusable JSON", zap.Error(err))
		return nil, fmt.Errorf("%w: malformed completion payload", models.ErrProvider)
	}

	return &Answer{
		Response:    parsed.Response,
		Attractions: s.matcher.Match(params.Question + " " + parsed.Response),
	}, nil
}

// SimpleChat answers one free-form message with plain-text completion.
func (s *ServiceImpl) SimpleChat(ctx context.Context, message string, history []models.ChatTurn) (*Answer, error) {
	if strings.TrimSpace(message) == "" {
		return nil, models.ErrValidation
	}

	messages := []llm.Message{{Role: llm.RoleSystem, Content: simpleChatPrompt}}
	messages = append(messages, historyMessages(history)...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})

	content, err := s.complete(ctx, llm.Request{
		Messages:    messages,
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	}, "simple_chat")
	if err != nil {
		return nil, err
	}

	return &Answer{
		Response:    content,
		Attractions: s.matcher.Match(content),
	}, nil
}

func (s *ServiceImpl) complete(ctx context.Context, req llm.Request, route string) (string, error) {
	start := time.Now()
	content, err := s.client.ChatCompletion(ctx, req)
	metrics.RecordProviderCall(ctx, route, time.Since(start), err)
	if err != nil {
		s.logger.Error("Completion provider call failed",
			zap.String("route", route),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %v", models.ErrProvider, err)
	}
	return content, nil
}

func historyMessages(turns []models.ChatTurn) []llm.Message {
	messages := make([]llm.Message, 0, len(turns))
	for _, turn := range turns {
		role := llm.RoleAssistant
		if turn.Role == "user" {
			role = llm.RoleUser
		}
		messages = append(messages, llm.Message{Role: role, Content: turn.Content})
	}
	return messages
}
