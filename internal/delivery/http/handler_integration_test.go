package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/roomlens/backend/config"
	"github.com/roomlens/backend/internal/domain"
	"github.com/roomlens/backend/internal/infrastructure/catalog"
	"github.com/roomlens/backend/internal/infrastructure/credits"
	"github.com/roomlens/backend/internal/infrastructure/imagegen"
	"github.com/roomlens/backend/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupTestRouter wires a router over real in-memory infrastructure with a
// disabled image provider, so requests exercise the full stack offline.
func setupTestRouter(initialCredits int) *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"*"},
		},
		RateLimit: config.RateLimitConfig{
			PerIPRPS:   1000,
			PerIPBurst: 1000,
		},
	}

	ledger := credits.NewMemoryLedger(initialCredits)
	provider := imagegen.NewClient(imagegen.Config{}) // no API key: disabled
	recommender := usecase.NewRecommendationService(catalog.NewMemoryIndex(), usecase.RecommendationConfig{})
	restyleService := usecase.NewRestyleService(recommender, ledger, provider)

	handler := NewHandler(restyleService, recommender, ledger)
	return SetupRouter(cfg, handler)
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheckEndpoint(t *testing.T) {
	router := setupTestRouter(3)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", body["status"])
	}
	if body["service"] != "roomlens-backend" {
		t.Errorf("service = %q", body["service"])
	}
}

func TestRestyleEndpoint(t *testing.T) {
	t.Run("serves recommendations with disabled provider", func(t *testing.T) {
		router := setupTestRouter(3)

		w := postJSON(router, "/api/v1/restyle", map[string]interface{}{
			"userId":    "u1",
			"imageUrl":  "https://example.com/room.jpg",
			"style":     "boho",
			"roomType":  "living_room",
			"intensity": "redesign",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
		}

		var resp domain.RestyleResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if resp.ProductCount != 10 {
			t.Errorf("ProductCount = %d, want 10 for redesign", resp.ProductCount)
		}
		if resp.ImageError == "" {
			t.Error("ImageError should report the disabled provider")
		}
		if resp.CreditsRemaining != 3 {
			t.Errorf("CreditsRemaining = %d, want 3 (no burn without an image)", resp.CreditsRemaining)
		}
	})

	t.Run("missing image returns 400", func(t *testing.T) {
		router := setupTestRouter(3)

		w := postJSON(router, "/api/v1/restyle", map[string]interface{}{
			"userId": "u1",
			"style":  "boho",
		})

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("missing userId returns 400", func(t *testing.T) {
		router := setupTestRouter(3)

		w := postJSON(router, "/api/v1/restyle", map[string]interface{}{
			"imageUrl": "https://example.com/room.jpg",
		})

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("exhausted credits return 402", func(t *testing.T) {
		router := setupTestRouter(0)

		w := postJSON(router, "/api/v1/restyle", map[string]interface{}{
			"userId":   "broke",
			"imageUrl": "https://example.com/room.jpg",
		})

		if w.Code != http.StatusPaymentRequired {
			t.Errorf("status = %d, want 402", w.Code)
		}
	})
}

func TestRecommendationsEndpoint(t *testing.T) {
	router := setupTestRouter(3)

	t.Run("returns ranked products", func(t *testing.T) {
		w := postJSON(router, "/api/v1/recommendations", map[string]interface{}{
			"style":     "boho",
			"roomType":  "living_room",
			"intensity": "refresh",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
		}

		var result domain.RecommendationResult
		if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if result.ProductCount != 8 {
			t.Errorf("ProductCount = %d, want 8 for refresh", result.ProductCount)
		}
		if result.IntensityInfo.TargetItemCount != 8 {
			t.Errorf("TargetItemCount = %d, want 8", result.IntensityInfo.TargetItemCount)
		}
	})

	t.Run("unknown style falls back without error", func(t *testing.T) {
		w := postJSON(router, "/api/v1/recommendations", map[string]interface{}{
			"style":     "cyberpunk",
			"roomType":  "garage",
			"intensity": "redesign",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var result domain.RecommendationResult
		if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if result.ProductCount == 0 {
			t.Error("fallback catalog should yield products")
		}
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/v1/recommendations", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestGetCreditsEndpoint(t *testing.T) {
	router := setupTestRouter(5)

	req, _ := http.NewRequest("GET", "/api/v1/credits/some-user", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		UserID  string `json:"userId"`
		Credits int    `json:"credits"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body.UserID != "some-user" {
		t.Errorf("userId = %q", body.UserID)
	}
	if body.Credits != 5 {
		t.Errorf("credits = %d, want 5", body.Credits)
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	router := setupTestRouter(3)

	req, _ := http.NewRequest("GET", "/api/v1/unknown", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
