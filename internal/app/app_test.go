package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy11/internal/config"
	"github.com/riskibarqy/fantasy11/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy11/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "fantasy11-api",
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		StorageDriver:      config.StorageMemory,
		CacheDriver:        config.CacheMemory,
		CacheTTL:           time.Minute,
		JWTSecretKey:       "test-secret",
		JWTExpiration:      time.Hour,
		JWTIssuer:          "fantasy11",
		CORSAllowedOrigins: []string{"*"},
		InternalJobToken:   "job-token",
		ScoringWorkers:     2,
	}
}

func TestNew_MemoryStorage(t *testing.T) {
	for _, cacheEnabled := range []bool{false, true} {
		cfg := testConfig()
		cfg.CacheEnabled = cacheEnabled

		a, err := New(context.Background(), cfg, logging.NewNop())
		if err != nil {
			t.Fatalf("new app (cache=%v): %v", cacheEnabled, err)
		}

		for _, path := range []string{"/healthz", "/v1/matches", "/v1/leagues/" + memory.LeagueIDMega} {
			rec := httptest.NewRecorder()
			a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("GET %s (cache=%v): expected 200, got %d body=%s", path, cacheEnabled, rec.Code, rec.Body.String())
			}
		}

		if err := a.Close(context.Background()); err != nil {
			t.Fatalf("close app: %v", err)
		}
	}
}

func TestNew_RejectsEmptyAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""

	if _, err := New(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty http addr")
	}
}

func TestNew_RejectsMissingJWTSecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecretKey = ""

	_, err := New(context.Background(), cfg, logging.NewNop())
	if err == nil || !strings.Contains(err.Error(), "token service") {
		t.Fatalf("expected token service error, got %v", err)
	}
}

func TestNew_RejectsInvalidQStashURL(t *testing.T) {
	cfg := testConfig()
	cfg.QStashEnabled = true
	cfg.QStashBaseURL = "not a url"
	cfg.QStashTargetBaseURL = "https://api.fantasy11.example"
	cfg.QStashToken = "qstash-token"

	_, err := New(context.Background(), cfg, logging.NewNop())
	if err == nil || !strings.Contains(err.Error(), "qstash") {
		t.Fatalf("expected qstash error, got %v", err)
	}
}
