package itinerary

import (
	"context"
	"encoding/json"
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

type stubPlannerService struct {
	saved *models.SavedItinerary
	err   error
	calls int
}

func (s *stubPlannerService) Generate(_ context.Context, _ GenerateParams) (*models.SavedItinerary, error) {
	s.calls++
	return s.saved, s.err
}

func (s *stubPlannerService) Get(_ context.Context, _ uuid.UUID) (*models.SavedItinerary, error) {
	return s.saved, s.err
}

func newTestRouter(service Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandlers(service, zap.NewNop())
	router := gin.New()
	router.POST("/api/itinerary/generate", h.HandleGenerate)
	router.GET("/api/itinerary/:id", h.HandleGet)
	router.GET("/api/itinerary/:id/markdown", h.HandleGetMarkdown)
	router.GET("/api/itinerary/:id/pdf", h.HandleGetPDF)
	router.POST("/api/itinerary/export/markdown", h.HandleExportMarkdown)
	router.POST("/api/itinerary/export/pdf", h.HandleExportPDF)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
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

func TestHandleGenerateOK(t *testing.T) {
	saved := &models.SavedItinerary{ID: uuid.New(), Title: "Aventura", Content: samplePlan()}
	router := newTestRouter(&stubPlannerService{saved: saved})

	w := do(t, router, http.MethodPost, "/api/itinerary/generate",
		`{"experienceType": "aventura", "duration": "3", "budget": "moderado"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID        uuid.UUID        `json:"id"`
		Itinerary models.Itinerary `json:"itinerary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, saved.ID, resp.ID)
	assert.Len(t, resp.Itinerary.Days, 3)
}

func TestHandleGenerateMissingFields(t *testing.T) {
	service := &stubPlannerService{}
	router := newTestRouter(service)

	w := do(t, router, http.MethodPost, "/api/itinerary/generate", `{"duration": "3"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, service.calls)
	assert.Contains(t, w.Body.String(), "details")
}

func TestHandleGetNotFound(t *testing.T) {
	router := newTestRouter(&stubPlannerService{err: models.ErrNotFound})
	w := do(t, router, http.MethodGet, "/api/itinerary/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetMarkdownStreamsDocument(t *testing.T) {
	saved := &models.SavedItinerary{ID: uuid.New(), Title: "Aventura", Content: samplePlan()}
	router := newTestRouter(&stubPlannerService{saved: saved})

	w := do(t, router, http.MethodGet, "/api/itinerary/"+saved.ID.String()+"/markdown", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")
	assert.True(t, strings.HasPrefix(w.Body.String(), "# Aventura en Chiapas"))
}

func TestHandleGetPDFStreamsDocument(t *testing.T) {
	saved := &models.SavedItinerary{ID: uuid.New(), Title: "Aventura", Content: samplePlan()}
	router := newTestRouter(&stubPlannerService{saved: saved})

	w := do(t, router, http.MethodGet, "/api/itinerary/"+saved.ID.String()+"/pdf", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestHandleExportValidatesPlan(t *testing.T) {
	router := newTestRouter(&stubPlannerService{})

	w := do(t, router, http.MethodPost, "/api/itinerary/export/markdown", `{"title": "", "days": []}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	plan, err := json.Marshal(samplePlan())
	require.NoError(t, err)
	w = do(t, router, http.MethodPost, "/api/itinerary/export/pdf", string(plan))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}
