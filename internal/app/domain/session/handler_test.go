package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/descubrechiapas/chiapas-guide/internal/app/domain/guide"
	"github.com/descubrechiapas/chiapas-guide/internal/app/models"
)

func newTestAPI(dispatcher guide.Service) (*gin.Engine, *Store) {
	gin.SetMode(gin.TestMode)
	store := NewStore(time.Hour, zap.NewNop())
	controller := NewController(store, dispatcher, time.Second, 6, zap.NewNop())
	h := NewHandlers(store, controller, zap.NewNop())

	router := gin.New()
	router.POST("/api/chat/sessions", h.HandleCreateSession)
	router.GET("/api/chat/sessions/:id", h.HandleGetSession)
	router.POST("/api/chat/sessions/:id/messages", h.HandleSubmitMessage)
	router.DELETE("/api/chat/sessions/:id/messages/:messageID", h.HandleDeleteMessage)
	router.GET("/api/chat/sessions/:id/suggestions", h.HandleSuggestions)
	return router, store
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	dispatcher := &stubDispatcher{answer: &guide.Answer{
		Response: "El Cañón del Sumidero se visita en lancha.",
		Attractions: []models.Attraction{{
			Name:        "Cañón del Sumidero",
			Coordinates: models.Coordinates{Lat: 16.8513, Lng: -93.0777},
		}},
	}}
	router, _ := newTestAPI(dispatcher)

	// create
	w := doRequest(t, router, http.MethodPost, "/api/chat/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		SessionID string           `json:"sessionId"`
		Messages  []models.Message `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.SessionID)
	require.Len(t, created.Messages, 1)
	assert.Equal(t, models.SenderBot, created.Messages[0].Sender)

	// submit
	w = doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/chat/sessions/%s/messages", created.SessionID),
		`{"message": "¿Cómo visito el Sumidero?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var submitted struct {
		Message models.Message `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitted))
	assert.Equal(t, models.SenderBot, submitted.Message.Sender)
	require.Len(t, submitted.Message.Attractions, 1)
	assert.Equal(t, "Cañón del Sumidero", submitted.Message.Attractions[0].Name)

	// transcript
	w = doRequest(t, router, http.MethodGet, "/api/chat/sessions/"+created.SessionID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched struct {
		Context  string           `json:"context"`
		Messages []models.Message `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Len(t, fetched.Messages, 3)
	assert.Equal(t, "canon_sumidero", fetched.Context)

	// suggestions follow the context
	w = doRequest(t, router, http.MethodGet, "/api/chat/sessions/"+created.SessionID+"/suggestions", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "lanchas")

	// delete one message
	w = doRequest(t, router, http.MethodDelete,
		fmt.Sprintf("/api/chat/sessions/%s/messages/%s", created.SessionID, submitted.Message.ID), "")
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestSubmitMessageEmptyBodyIsBadRequest(t *testing.T) {
	router, store := newTestAPI(&stubDispatcher{})
	sess := store.Create()

	w := doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/chat/sessions/%s/messages", sess.ID), `{"message": "  "}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "vacío")
}

func TestSessionEndpointsUnknownSession(t *testing.T) {
	router, _ := newTestAPI(&stubDispatcher{})
	missing := "a2b1f6a0-1f14-4b05-9f0a-61d77b8a2f51"

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/api/chat/sessions/" + missing, ""},
		{http.MethodPost, "/api/chat/sessions/" + missing + "/messages", `{"message": "hola"}`},
		{http.MethodGet, "/api/chat/sessions/" + missing + "/suggestions", ""},
	} {
		w := doRequest(t, router, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusNotFound, w.Code, tc.path)
	}
}

func TestSessionEndpointsMalformedID(t *testing.T) {
	router, _ := newTestAPI(&stubDispatcher{})
	w := doRequest(t, router, http.MethodGet, "/api/chat/sessions/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitMessageProviderFailure(t *testing.T) {
	router, store := newTestAPI(&stubDispatcher{err: models.ErrProvider})
	sess := store.Create()

	w := doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/chat/sessions/%s/messages", sess.ID), `{"message": "hola"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error interno del servidor")

	// the transcript still carries the apology
	messages := sess.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, apologyMessage, messages[2].Content)
}
