// Package llm wraps the OpenAI chat-completions endpoint behind a small
// interface so services can be tested against a stub provider.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/descubrechiapas/chiapas-guide/internal/pkg/config"
)

// ErrMissingAPIKey is returned when a completion is requested without a
// configured provider key. Config load does not fail on a missing key;
// requests do.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not configured")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Request is one chat-completion call. JSONMode forces the provider's
// structured json_object response format.
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
	JSONMode    bool
}

type Client interface {
	ChatCompletion(ctx context.Context, req Request) (string, error)
}

var _ Client = (*OpenAIClient)(nil)

type OpenAIClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewOpenAIClient(cfg config.OpenAIConfig, logger *zap.Logger) *OpenAIClient {
	return &OpenAIClient{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
		logger: logger,
	}
}

type completionRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatCompletion performs one call against /chat/completions and returns the
// first choice's content. No retries: a failed call surfaces as an error and
// the caller decides what the user sees.
func (c *OpenAIClient) ChatCompletion(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", ErrMissingAPIKey
	}

	payload := completionRequest{
		Model:       c.model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONMode {
		payload.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		err := parseProviderError(resp)
		c.logger.Error("Completion provider returned an error",
			zap.Int("status", resp.StatusCode),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err),
		)
		return "", err
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("completion response contained no choices")
	}

	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("completion response content is empty")
	}

	c.logger.Debug("Completion call finished",
		zap.String("model", c.model),
		zap.Duration("latency", time.Since(start)),
	)
	return content, nil
}

func parseProviderError(resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return fmt.Errorf("provider error: %s", resp.Status)
	}

	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || payload.Error.Message == "" {
		return fmt.Errorf("provider error: %s", resp.Status)
	}
	return fmt.Errorf("provider error: %s", payload.Error.Message)
}
