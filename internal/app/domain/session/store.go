// Package session holds in-memory chat transcripts and drives one
// question/answer turn at a time against the dispatch service.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/descubrechiapas/chiapas-guide/internal/app/models"
	"github.com/descubrechiapas/chiapas-guide/internal/observability/metrics"
)

const welcomeMessage = "¡Hola! Soy tu asistente de viajes por Chiapas. Puedo ayudarte con información sobre destinos, rutas, transporte, alojamiento, gastronomía y más. ¿Qué te gustaría saber sobre Chiapas?"

// Session is one visitor's transcript. All reads and writes go through mu;
// inFlight serializes submits so a session never runs two completions at
// once.
type Session struct {
	ID uuid.UUID

	mu       sync.Mutex
	messages []models.Message
	context  string
	inFlight bool
}

// Messages returns a copy of the transcript without the typing placeholder.
func (s *Session) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Message, 0, len(s.messages))
	for _, m := range s.messages {
		if m.Placeholder {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Context returns the derived conversation context, empty for a fresh
// session.
func (s *Session) Context() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.context
}

func (s *Session) append(m models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
}

func (s *Session) removePlaceholder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.messages[:0]
	for _, m := range s.messages {
		if m.Placeholder {
			continue
		}
		kept = append(kept, m)
	}
	s.messages = kept
}

// deleteMessage removes one transcript entry by id.
func (s *Session) deleteMessage(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.messages {
		if m.ID == id && !m.Placeholder {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return true
		}
	}
	return false
}

// history returns the last n non-placeholder messages as completion turns.
func (s *Session) history(n int) []models.ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := make([]models.ChatTurn, 0, n)
	for _, m := range s.messages {
		if m.Placeholder {
			continue
		}
		role := "assistant"
		if m.Sender == models.SenderUser {
			role = "user"
		}
		turns = append(turns, models.ChatTurn{Role: role, Content: m.Content})
	}
	if len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	return turns
}

// tryBeginSubmit marks the session busy. Returns false when another submit
// already holds it.
func (s *Session) tryBeginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

func (s *Session) endSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
}

// Store keeps sessions in memory with an inactivity TTL. Expired sessions
// are simply gone; the next lookup returns ErrSessionNotFound.
type Store struct {
	cache  *cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewStore(ttl time.Duration, logger *zap.Logger) *Store {
	c := cache.New(ttl, 10*time.Minute)
	c.OnEvicted(func(key string, _ interface{}) {
		metrics.AddActiveSessions(context.Background(), -1)
		logger.Debug("Chat session expired", zap.String("session_id", key))
	})
	return &Store{
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// Create starts a new session with the welcome message preloaded.
func (st *Store) Create() *Session {
	s := &Session{
		ID: uuid.New(),
		messages: []models.Message{{
			ID:        uuid.New(),
			Content:   welcomeMessage,
			Sender:    models.SenderBot,
			Timestamp: time.Now(),
		}},
	}
	st.cache.Set(s.ID.String(), s, cache.DefaultExpiration)
	metrics.AddActiveSessions(context.Background(), 1)
	st.logger.Debug("Chat session created", zap.String("session_id", s.ID.String()))
	return s
}

// Get returns a live session and slides its expiry window.
func (st *Store) Get(id uuid.UUID) (*Session, error) {
	v, ok := st.cache.Get(id.String())
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	s := v.(*Session)
	st.cache.Set(s.ID.String(), s, cache.DefaultExpiration)
	return s, nil
}
