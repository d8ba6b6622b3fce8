package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"model-srv/internal/middleware"
	"model-srv/internal/reranking"
	"model-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// fakeUseCase records the last input and returns canned output.
type fakeUseCase struct {
	lastInput reranking.RerankInput
	output    reranking.RerankOutput
	err       error
}

func (f *fakeUseCase) Rerank(_ context.Context, input reranking.RerankInput) (reranking.RerankOutput, error) {
	f.lastInput = input
	if f.err != nil {
		return reranking.RerankOutput{}, f.err
	}
	return f.output, nil
}

func setupRouter(uc reranking.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.Init(log.ZapConfig{Level: "fatal"})
	h := New(l, uc, nil)

	r := gin.New()
	h.RegisterRoutes(r.Group(""), middleware.New(l))
	return r
}

func doRequest(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/rerank", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRerankHandler(t *testing.T) {
	t.Run("success returns scores", func(t *testing.T) {
		uc := &fakeUseCase{output: reranking.RerankOutput{Scores: []float64{0.9, 0.1}}}
		r := setupRouter(uc)

		w := doRequest(r, `{"query": "q", "candidates": ["a", "b"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status mismatch: got %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
		}

		var resp struct {
			Scores []float64 `json:"scores"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("response unmarshal failed: %v", err)
		}
		if len(resp.Scores) != 2 {
			t.Errorf("score count mismatch: got %d, want 2", len(resp.Scores))
		}
		if resp.Scores[0] != 0.9 {
			t.Errorf("score mismatch: got %v, want 0.9", resp.Scores[0])
		}
	})

	t.Run("default batch size applied", func(t *testing.T) {
		uc := &fakeUseCase{output: reranking.RerankOutput{Scores: []float64{1}}}
		r := setupRouter(uc)

		w := doRequest(r, `{"query": "q", "candidates": ["a"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status mismatch: got %d, want %d", w.Code, http.StatusOK)
		}
		if uc.lastInput.BatchSize != reranking.DefaultBatchSize {
			t.Errorf("batch size mismatch: got %d, want %d", uc.lastInput.BatchSize, reranking.DefaultBatchSize)
		}
	})

	t.Run("missing query is 400", func(t *testing.T) {
		r := setupRouter(&fakeUseCase{})
		w := doRequest(r, `{"candidates": ["a"]}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status mismatch: got %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("missing candidates is 400", func(t *testing.T) {
		r := setupRouter(&fakeUseCase{})
		w := doRequest(r, `{"query": "q"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status mismatch: got %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("empty candidates is 400", func(t *testing.T) {
		r := setupRouter(&fakeUseCase{})
		w := doRequest(r, `{"query": "q", "candidates": []}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status mismatch: got %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("batch size below one is 400", func(t *testing.T) {
		r := setupRouter(&fakeUseCase{})
		w := doRequest(r, `{"query": "q", "candidates": ["a"], "batch_size": 0}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status mismatch: got %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("usecase failure is 500", func(t *testing.T) {
		r := setupRouter(&fakeUseCase{err: reranking.ErrMismatchScoreCount})
		w := doRequest(r, `{"query": "q", "candidates": ["a"]}`)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("status mismatch: got %d, want %d", w.Code, http.StatusInternalServerError)
		}
	})
}
