package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/gridironstats/ncaafb-api/internal/usecase"
)

type answerQueryRequest struct {
	Question   string `json:"question" validate:"required"`
	Model      string `json:"model" validate:"omitempty,max=100"`
	MaxResults int    `json:"max_results" validate:"omitempty,gte=1"`
}

type answerQueryResponse struct {
	SQL      string           `json:"sql"`
	Rows     []map[string]any `json:"rows"`
	RowCount int              `json:"row_count"`
	Summary  *string          `json:"summary"`
}

func (h *Handler) AnswerQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AnswerQuery")
	defer span.End()

	var req answerQueryRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.queryService.Answer(ctx, usecase.QueryRequest{
		Question:   req.Question,
		Model:      req.Model,
		MaxResults: req.MaxResults,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "answer query failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	// Summary is null, not empty string, when generation was skipped or failed.
	var summary *string
	if result.Summary != "" {
		summary = &result.Summary
	}
	rows := result.Rows
	if rows == nil {
		rows = []map[string]any{}
	}

	writeJSON(ctx, w, http.StatusOK, answerQueryResponse{
		SQL:      result.SQL,
		Rows:     rows,
		RowCount: result.RowCount,
		Summary:  summary,
	})
}
