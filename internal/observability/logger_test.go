package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestWithFields(t *testing.T) {
	ctx := context.Background()
	ctx = WithFields(ctx, Field{"airdrop_id", "a-1"})
	ctx = WithFields(ctx, Field{"wallet", "0xabc"}, Field{"task_id", "t-1"})

	fields := getObservabilityFields(ctx)
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if fields[0].Key != "airdrop_id" || fields[0].Value != "a-1" {
		t.Errorf("unexpected first field: %+v", fields[0])
	}
	if fields[2].Key != "task_id" {
		t.Errorf("unexpected last field: %+v", fields[2])
	}
}

func TestWithFieldsDoesNotMutateParent(t *testing.T) {
	parent := WithFields(context.Background(), Field{"wallet", "0xabc"})
	_ = WithFields(parent, Field{"task_id", "t-1"})

	fields := getObservabilityFields(parent)
	if len(fields) != 1 {
		t.Errorf("parent context gained fields, got %d", len(fields))
	}
}

func TestMergeFieldsDeduplicates(t *testing.T) {
	ctx := WithFields(context.Background(), Field{"status", "pending"})
	merged := mergeFields(ctx, []MetricField{{"status", "active"}, {"latency", 12}})

	if len(merged) != 2 {
		t.Fatalf("expected 2 merged fields, got %d", len(merged))
	}
}

func TestMiddlewareRequestID(t *testing.T) {
	tests := []struct {
		name      string
		requestID string
	}{
		{
			name:      "generates request id when absent",
			requestID: "",
		},
		{
			name:      "keeps caller-supplied request id",
			requestID: "req-caller-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			router := gin.New()
			router.Use(Middleware(NewLogger()))
			router.GET("/airdrops", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/airdrops", nil)
			if tt.requestID != "" {
				req.Header.Set("X-Request-ID", tt.requestID)
			}
			router.ServeHTTP(w, req)

			got := w.Header().Get("X-Request-ID")
			if got == "" {
				t.Fatal("expected X-Request-ID response header")
			}
			if tt.requestID != "" && got != tt.requestID {
				t.Errorf("X-Request-ID = %v, want %v", got, tt.requestID)
			}
		})
	}
}

func TestMiddlewareRecoversFromPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	router := gin.New()
	router.Use(Middleware(NewLogger()))
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
