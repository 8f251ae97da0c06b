package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/gridironstats/ncaafb-api/internal/usecase"
)

// Error kinds are part of the wire contract: clients branch on them, so
// the strings stay stable even when messages change.
const (
	kindValidation   = "validation"
	kindGeneration   = "generation"
	kindTimeout      = "timeout"
	kindExecution    = "execution"
	kindInvalidInput = "invalid_input"
	kindNotFound     = "not_found"
	kindInternal     = "internal"
)

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// listEnvelope wraps collection responses. Count is the total number of
// matching records, not the page size.
type listEnvelope struct {
	Items  any `json:"items"`
	Count  int `json:"count"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type mappedError struct {
	HTTPStatus int
	Kind       string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
	_ = ctx
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	writeJSON(ctx, w, mapped.HTTPStatus, errorBody{
		Error: err.Error(),
		Kind:  mapped.Kind,
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorBody{
		Error: "internal server error",
		Kind:  kindInternal,
	})
}

func mapError(ctx context.Context, err error) mappedError {
	ctx, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()
	_ = ctx

	switch {
	case errors.Is(err, usecase.ErrValidation):
		return mappedError{HTTPStatus: http.StatusBadRequest, Kind: kindValidation}
	case errors.Is(err, usecase.ErrGeneration):
		return mappedError{HTTPStatus: http.StatusBadGateway, Kind: kindGeneration}
	case errors.Is(err, usecase.ErrQueryTimeout):
		return mappedError{HTTPStatus: http.StatusGatewayTimeout, Kind: kindTimeout}
	case errors.Is(err, usecase.ErrPoolExhausted):
		return mappedError{HTTPStatus: http.StatusServiceUnavailable, Kind: kindExecution}
	case errors.Is(err, usecase.ErrExecution):
		return mappedError{HTTPStatus: http.StatusInternalServerError, Kind: kindExecution}
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Kind: kindInvalidInput}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Kind: kindNotFound}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Kind: kindInternal}
	}
}
