package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"model-srv/internal/middleware"
	"model-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type noopRegistrar struct{}

func (noopRegistrar) RegisterRoutes(r *gin.RouterGroup, _ middleware.Middleware) {
	r.POST("/echo", func(c *gin.Context) { c.Status(http.StatusOK) })
}

func newTestServer(t *testing.T, readyChecks []ReadyCheck) *HTTPServer {
	t.Helper()
	srv, err := New(log.Init(log.ZapConfig{Level: "fatal"}), Config{
		Logger:      log.Init(log.ZapConfig{Level: "fatal"}),
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		ServiceName: "embedder",
		Device:      "cpu",
		Handlers:    []RouteRegistrar{noopRegistrar{}},
		ReadyChecks: readyChecks,
	})
	if err != nil {
		t.Fatalf("server init failed: %v", err)
	}
	srv.mapHandlers()
	return srv
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status mismatch: got %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response unmarshal failed: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field mismatch: got %q, want %q", body["status"], "ok")
	}
	if body["device"] != "cpu" {
		t.Errorf("device field mismatch: got %q, want %q", body["device"], "cpu")
	}
}

func TestReadyCheck(t *testing.T) {
	t.Run("ready when all checks pass", func(t *testing.T) {
		srv := newTestServer(t, []ReadyCheck{
			func(ctx context.Context) error { return nil },
		})

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status mismatch: got %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("503 when a check fails", func(t *testing.T) {
		srv := newTestServer(t, []ReadyCheck{
			func(ctx context.Context) error { return errors.New("cache unreachable") },
		})

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("status mismatch: got %d, want %d", w.Code, http.StatusServiceUnavailable)
		}
	})
}

func TestValidate(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "fatal"})

	t.Run("missing device", func(t *testing.T) {
		_, err := New(l, Config{
			Logger:      l,
			Port:        8080,
			Mode:        gin.TestMode,
			ServiceName: "embedder",
			Handlers:    []RouteRegistrar{noopRegistrar{}},
		})
		if err == nil {
			t.Error("expected error for missing device")
		}
	})

	t.Run("missing handlers", func(t *testing.T) {
		_, err := New(l, Config{
			Logger:      l,
			Port:        8080,
			Mode:        gin.TestMode,
			ServiceName: "embedder",
			Device:      "cpu",
		})
		if err == nil {
			t.Error("expected error for missing handlers")
		}
	})
}
