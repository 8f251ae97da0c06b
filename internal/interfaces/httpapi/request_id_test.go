package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gridironstats/ncaafb-api/internal/platform/id"
)

func TestRequestID_HonorsInboundHeader(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := RequestID(id.NewRandomGenerator(), next)

	req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if seen != "req-123" {
		t.Fatalf("context request id = %q, want req-123", seen)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("response request id = %q, want req-123", got)
	}
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequestID(id.NewRandomGenerator(), next)

	req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); len(got) != 32 {
		t.Fatalf("expected generated 32-char request id, got %q", got)
	}
}
