package guide

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/descubrechiapas/chiapas-guide/internal/app/models"
)

type stubService struct {
	answer *Answer
	err    error
	calls  int
}

func (s *stubService) TourGuide(_ context.Context, _ AskParams) (*Answer, error) {
	s.calls++
	return s.answer, s.err
}

func (s *stubService) SimpleChat(_ context.Context, _ string, _ []models.ChatTurn) (*Answer, error) {
	s.calls++
	return s.answer, s.err
}

func newTestRouter(service Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandlers(service, zap.NewNop())
	router := gin.New()
	router.POST("/api/tour-guide", h.HandleTourGuide)
	router.POST("/api/simple-chatbot", h.HandleSimpleChatbot)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleTourGuideOK(t *testing.T) {
	service := &stubService{answer: &Answer{
		Response: "Palenque es imperdible.",
		Attractions: []models.Attraction{{
			Name:        "Palenque",
			Location:    "Chiapas, México",
			Coordinates: models.Coordinates{Lat: 17.4838, Lng: -92.0436},
		}},
	}}
	router := newTestRouter(service)

	w := postJSON(t, router, "/api/tour-guide", `{"question": "¿Qué me recomiendas en Palenque?", "intent": "question"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got Answer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Palenque es imperdible.", got.Response)
	require.Len(t, got.Attractions, 1)
	assert.Equal(t, "Palenque", got.Attractions[0].Name)
}

func TestHandleTourGuideMissingQuestion(t *testing.T) {
	service := &stubService{}
	router := newTestRouter(service)

	w := postJSON(t, router, "/api/tour-guide", `{"intent": "question"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, service.calls)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Solicitud inválida", body["error"])
	assert.NotEmpty(t, body["details"])
}

func TestHandleTourGuideRejectsUnknownIntent(t *testing.T) {
	service := &stubService{}
	router := newTestRouter(service)

	w := postJSON(t, router, "/api/tour-guide", `{"question": "hola", "intent": "greeting"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, service.calls)
}

func TestHandleTourGuideProviderFailureStaysGeneric(t *testing.T) {
	service := &stubService{err: models.ErrProvider}
	router := newTestRouter(service)

	w := postJSON(t, router, "/api/tour-guide", `{"question": "¿Qué hacer en Comitán?"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Error interno del servidor", body["error"])
	assert.Equal(t, genericProviderMessage, body["message"])
	assert.NotContains(t, w.Body.String(), "provider")
}

func TestHandleSimpleChatbotOK(t *testing.T) {
	service := &stubService{answer: &Answer{Response: "¡Hola! ¿En qué te ayudo?"}}
	router := newTestRouter(service)

	w := postJSON(t, router, "/api/simple-chatbot", `{"message": "hola", "history": [{"role": "user", "content": "hola"}]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "¿En qué te ayudo?")
}

func TestHandleSimpleChatbotMissingMessage(t *testing.T) {
	service := &stubService{}
	router := newTestRouter(service)

	w := postJSON(t, router, "/api/simple-chatbot", `{"history": []}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, service.calls)
	assert.Contains(t, w.Body.String(), "Datos de entrada inválidos")
}

func TestHandleSimpleChatbotMalformedJSON(t *testing.T) {
	service := &stubService{}
	router := newTestRouter(service)

	w := postJSON(t, router, "/api/simple-chatbot", `{"message": `)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, service.calls)
}
