package subscription

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/descubrechiapas/chiapas-guide/internal/app/models"
)

type stubRepo struct {
	err   error
	calls int
	email string
}

func (s *stubRepo) Upsert(_ context.Context, email string) (*models.Subscription, error) {
	s.calls++
	s.email = email
	if s.err != nil {
		return nil, s.err
	}
	return &models.Subscription{ID: uuid.New(), Email: email, Active: true}, nil
}

func postSubscribe(t *testing.T, repo Repository, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/subscribe", NewHandlers(repo, zap.NewNop()).HandleSubscribe)

	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleSubscribeOK(t *testing.T) {
	repo := &stubRepo{}
	w := postSubscribe(t, repo, `{"email": "viajero@example.com"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Equal(t, "viajero@example.com", repo.email)
}

func TestHandleSubscribeInvalidEmail(t *testing.T) {
	repo := &stubRepo{}
	for _, body := range []string{`{}`, `{"email": "no-es-correo"}`, `{"email": ""}`} {
		w := postSubscribe(t, repo, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Zero(t, repo.calls)
}

func TestHandleSubscribeStorageFailure(t *testing.T) {
	repo := &stubRepo{err: errors.New("db down")}
	w := postSubscribe(t, repo, `{"email": "viajero@example.com"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.NotContains(t, w.Body.String(), "db down")
}
