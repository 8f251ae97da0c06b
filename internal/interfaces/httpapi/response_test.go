package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/gridironstats/ncaafb-api/internal/usecase"
)

func TestWriteError_KindMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{name: "validation", err: usecase.ErrValidation, wantStatus: http.StatusBadRequest, wantKind: "validation"},
		{name: "generation", err: usecase.ErrGeneration, wantStatus: http.StatusBadGateway, wantKind: "generation"},
		{name: "timeout", err: usecase.ErrQueryTimeout, wantStatus: http.StatusGatewayTimeout, wantKind: "timeout"},
		{name: "pool exhausted", err: usecase.ErrPoolExhausted, wantStatus: http.StatusServiceUnavailable, wantKind: "execution"},
		{name: "execution", err: usecase.ErrExecution, wantStatus: http.StatusInternalServerError, wantKind: "execution"},
		{name: "invalid input", err: usecase.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantKind: "invalid_input"},
		{name: "not found", err: usecase.ErrNotFound, wantStatus: http.StatusNotFound, wantKind: "not_found"},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantKind: "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, fmt.Errorf("wrapped: %w", tt.err))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body errorBody
			if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal response body: %v", err)
			}
			if body.Kind != tt.wantKind {
				t.Fatalf("kind = %q, want %q", body.Kind, tt.wantKind)
			}
			if body.Error == "" {
				t.Fatal("expected non-empty error message")
			}
		})
	}
}

func TestWriteInternalError_HidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeInternalError(context.Background(), rec)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var body errorBody
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.Error != "internal server error" || body.Kind != "internal" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestWriteJSON_SetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", got)
	}
}
