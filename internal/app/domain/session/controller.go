package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/descubrechiapas/chiapas-guide/internal/app/domain/guide"
	"github.com/descubrechiapas/chiapas-guide/internal/app/models"
	"github.com/descubrechiapas/chiapas-guide/internal/observability/metrics"
)

const apologyMessage = "Lo siento, ha ocurrido un error al procesar tu pregunta. Por favor, intenta nuevamente."

// Controller runs one question/answer turn against the dispatch service and
// keeps the transcript consistent: every completed submit ends with exactly
// one new bot message and no placeholder, whatever the provider did.
type Controller struct {
	store         *Store
	dispatcher    guide.Service
	submitTimeout time.Duration
	historyWindow int
	logger        *zap.Logger
}

func NewController(store *Store, dispatcher guide.Service, submitTimeout time.Duration, historyWindow int, logger *zap.Logger) *Controller {
	return &Controller{
		store:         store,
		dispatcher:    dispatcher,
		submitTimeout: submitTimeout,
		historyWindow: historyWindow,
		logger:        logger,
	}
}

// Submit appends the visitor's message, dispatches it with the recent
// history and conversation context, and appends the bot's answer. On any
// dispatch failure the transcript still gets a bot message: the fixed
// apology. The error is returned to the caller exactly once; it is never
// also surfaced as a second transcript entry.
func (c *Controller) Submit(ctx context.Context, sessionID uuid.UUID, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.ErrEmptyMessage
	}

	sess, err := c.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if !sess.tryBeginSubmit() {
		return nil, models.ErrSubmitInFlight
	}
	defer sess.endSubmit()

	history := sess.history(c.historyWindow)
	previousContext := sess.Context()

	sess.append(models.Message{
		ID:        uuid.New(),
		Content:   text,
		Sender:    models.SenderUser,
		Timestamp: time.Now(),
	})
	metrics.RecordChatMessage(ctx, string(models.SenderUser))

	sess.append(models.Message{
		ID:          uuid.New(),
		Sender:      models.SenderBot,
		Timestamp:   time.Now(),
		Placeholder: true,
	})

	intent := guide.IntentQuestion
	if previousContext != "" {
		intent = guide.IntentFollowup
	}

	dispatchCtx, cancel := context.WithTimeout(ctx, c.submitTimeout)
	defer cancel()

	answer, err := c.dispatcher.TourGuide(dispatchCtx, guide.AskParams{
		Question:         text,
		Intent:           intent,
		Context:          previousContext,
		PreviousMessages: history,
	})

	sess.removePlaceholder()

	if err != nil {
		c.logger.Warn("Chat submit failed, appending apology",
			zap.String("session_id", sessionID.String()),
			zap.Error(err),
		)
		sess.append(models.Message{
			ID:        uuid.New(),
			Content:   apologyMessage,
			Sender:    models.SenderBot,
			Timestamp: time.Now(),
		})
		return nil, err
	}

	newContext := deriveContext(text, answer.Response, previousContext)
	sess.mu.Lock()
	sess.context = newContext
	sess.mu.Unlock()

	botMessage := models.Message{
		ID:          uuid.New(),
		Content:     answer.Response,
		Sender:      models.SenderBot,
		Timestamp:   time.Now(),
		Attractions: answer.Attractions,
		Suggestions: suggestionsFor(newContext),
	}
	sess.append(botMessage)
	metrics.RecordChatMessage(ctx, string(models.SenderBot))

	return &botMessage, nil
}

// Suggestions returns the canned follow-ups for the session's current
// context.
func (c *Controller) Suggestions(sessionID uuid.UUID) ([]string, error) {
	sess, err := c.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return suggestionsFor(sess.Context()), nil
}

// DeleteMessage removes one transcript entry by id.
func (c *Controller) DeleteMessage(sessionID, messageID uuid.UUID) error {
	sess, err := c.store.Get(sessionID)
	if err != nil {
		return err
	}
	if !sess.deleteMessage(messageID) {
		return models.ErrNotFound
	}
	return nil
}
