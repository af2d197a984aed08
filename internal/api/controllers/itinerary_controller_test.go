package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"dayplanner/internal/gazetteer"
	"dayplanner/internal/models/request_models"
	"dayplanner/internal/models/response_models"
	"dayplanner/pkg/utils"
)

type stubItineraryService struct {
	itinerary *response_models.Itinerary
	err       error
	gotReq    request_models.BuildItineraryRequest
}

func (s *stubItineraryService) Build(ctx context.Context, req request_models.BuildItineraryRequest) (*response_models.Itinerary, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.itinerary, nil
}

func newItineraryRouter(svc *stubItineraryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/itineraries/build", NewItineraryController(svc).BuildItineraryHandler)
	return r
}

func postItinerary(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/itineraries/build", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var envelope utils.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestBuildItineraryHandlerSuccess(t *testing.T) {
	svc := &stubItineraryService{
		itinerary: &response_models.Itinerary{
			Query: "lunch in Soho",
			Date:  "2025-06-04",
			Places: []response_models.ScheduledStop{
				{Venue: response_models.Place{ID: "s1", Name: "Dean Street Townhouse"}, Time: "13:00", IsFixed: true},
				{Venue: response_models.Place{ID: "m1", Name: "The Araki"}, Time: "20:00", IsFixed: true},
			},
		},
	}
	r := newItineraryRouter(svc)

	w, envelope := postItinerary(t, r, `{"query": "lunch in Soho", "date": "2025-06-04", "start_time": "10:00"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", envelope.Status)
	assert.Equal(t, "Itinerary built successfully", envelope.Message)
	assert.NotNil(t, envelope.Data)

	assert.Equal(t, "lunch in Soho", svc.gotReq.Query)
	assert.Equal(t, "2025-06-04", svc.gotReq.Date)
	assert.Equal(t, "10:00", svc.gotReq.StartTime)
}

func TestBuildItineraryHandlerRejectsMissingQuery(t *testing.T) {
	svc := &stubItineraryService{}
	r := newItineraryRouter(svc)

	w, envelope := postItinerary(t, r, `{"date": "2025-06-04"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "query is required", envelope.Message)
	assert.Empty(t, svc.gotReq.Query)
}

func TestBuildItineraryHandlerRejectsMalformedBody(t *testing.T) {
	r := newItineraryRouter(&stubItineraryService{})

	w, envelope := postItinerary(t, r, `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", envelope.Status)
}

func TestBuildItineraryHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"empty query", utils.ErrEmptyQuery, http.StatusBadRequest},
		{"unresolved location", fmt.Errorf("%w: %q (try: Soho)", utils.ErrUnresolvedLocation, "Narnia"), http.StatusNotFound},
		{"insufficient stops", fmt.Errorf("%w: only 1 venue(s) found", utils.ErrInsufficientStops), http.StatusUnprocessableEntity},
		{"upstream down", fmt.Errorf("%w: place search status 503", utils.ErrExternalServiceUnavailable), http.StatusServiceUnavailable},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newItineraryRouter(&stubItineraryService{err: tc.err})

			w, envelope := postItinerary(t, r, `{"query": "anything"}`)

			assert.Equal(t, tc.wantCode, w.Code)
			assert.Equal(t, "error", envelope.Status)
			assert.Equal(t, tc.wantCode, envelope.Code)
		})
	}
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", NewHealthController(gazetteer.LondonConfig()).HealthHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope utils.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "success", envelope.Status)

	data, ok := envelope.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "London", data["city"])
}
