package router

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tidespring/breeze/internal/config"
	"github.com/tidespring/breeze/internal/domain/model"
	"github.com/tidespring/breeze/internal/server/http/handlers"
	testhelpers "github.com/tidespring/breeze/internal/test"
)

func newEngine(t *testing.T, facade handlers.BreezeFacade) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{AuthRateLimit: 100, AuthRateBurst: 100}
	return Setup(facade, testhelpers.HealthCheckerStub{}, cfg, logger)
}

func TestSetupRoutes(t *testing.T) {
	cityID := uuid.New()
	facade := testhelpers.BreezeFacadeStub{
		CityFacadeStub: testhelpers.CityFacadeStub{
			OverviewFn: func(context.Context, int64) (*model.CityOverview, error) {
				cw := model.CityWeather{City: model.City{ID: cityID, Name: "Paris", Favorite: true}}
				return &model.CityOverview{Favorites: []model.CityWeather{cw}, Cities: []model.CityWeather{cw}}, nil
			},
			ToggleFavoriteFn: func(_ context.Context, ownerID int64, id uuid.UUID) (*model.City, error) {
				return &model.City{ID: id, OwnerID: ownerID, Favorite: true}, nil
			},
			RemoveCityFn: func(context.Context, int64, uuid.UUID) error { return nil },
		},
	}
	engine := newEngine(t, facade)

	body, _ := json.Marshal(map[string]string{"name": "Alice", "email": "a@b.com", "password": "secret"})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for register, got %d", resp.Code)
	}

	body, _ = json.Marshal(map[string]string{"email": "a@b.com", "password": "secret"})
	req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for login, got %d", resp.Code)
	}

	body, _ = json.Marshal(map[string]string{"cityName": "Paris"})
	req = httptest.NewRequest(http.MethodPost, "/cities", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for add city, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/cities", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for list, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPut, "/cities/"+cityID.String()+"/favorite", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for favorite, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/cities/"+cityID.String(), nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for delete, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for ping, got %d", resp.Code)
	}
}

func TestSetupRequiresAuthForCities(t *testing.T) {
	engine := newEngine(t, testhelpers.BreezeFacadeStub{})

	targets := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/cities"},
		{http.MethodGet, "/cities"},
		{http.MethodPut, "/cities/" + uuid.New().String() + "/favorite"},
		{http.MethodDelete, "/cities/" + uuid.New().String()},
	}

	for _, target := range targets {
		req := httptest.NewRequest(target.method, target.path, nil)
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without token, got %d", target.method, target.path, resp.Code)
		}
	}
}

func TestSetupCompressesResponses(t *testing.T) {
	engine := newEngine(t, testhelpers.BreezeFacadeStub{})

	req := httptest.NewRequest(http.MethodGet, "/cities", nil)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip response, got %q", resp.Header().Get("Content-Encoding"))
	}

	reader, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !bytes.Contains(decoded, []byte("favorites")) {
		t.Fatalf("unexpected body: %s", decoded)
	}
}

var _ handlers.BreezeFacade = testhelpers.BreezeFacadeStub{}
