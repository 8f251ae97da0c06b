package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/gridironstats/ncaafb-api/internal/platform/logging"
	"github.com/gridironstats/ncaafb-api/internal/schema"
	"github.com/gridironstats/ncaafb-api/internal/sqlguard"
)

// SQLGenerator produces a candidate SQL statement for a natural-language
// question over the described schema. An empty model selects the provider's
// default.
type SQLGenerator interface {
	GenerateSQL(ctx context.Context, question, model, schemaContext string, maxResults int) (string, error)
}

// Summarizer turns result rows back into a short natural-language answer.
// Failures are treated as non-fatal by callers.
type Summarizer interface {
	Summarize(ctx context.Context, question string, rows []map[string]any) (string, error)
}

// QueryRunner executes an approved read-only statement and returns its rows.
// Implementations classify failures with ErrQueryTimeout, ErrPoolExhausted,
// or ErrExecution.
type QueryRunner interface {
	Run(ctx context.Context, query string) ([]map[string]any, error)
}

// QueryRequest is one natural-language question. Model and MaxResults are
// optional overrides; MaxResults never raises the configured cap.
type QueryRequest struct {
	Question   string
	Model      string
	MaxResults int
}

// QueryResult is the answer to one question. Summary is empty when summary
// generation was skipped or failed.
type QueryResult struct {
	SQL      string
	Rows     []map[string]any
	RowCount int
	Summary  string
}

// QueryService drives the question-to-answer pipeline: generate a statement,
// validate it against the schema, execute it, and summarize the rows.
type QueryService struct {
	generator      SQLGenerator
	guard          *sqlguard.Guard
	runner         QueryRunner
	summarizer     Summarizer
	registry       *schema.Registry
	logger         *logging.Logger
	maxQuestionLen int
}

func NewQueryService(
	generator SQLGenerator,
	guard *sqlguard.Guard,
	runner QueryRunner,
	summarizer Summarizer,
	registry *schema.Registry,
	logger *logging.Logger,
	maxQuestionLen int,
) *QueryService {
	if logger == nil {
		logger = logging.Default()
	}
	if maxQuestionLen <= 0 {
		maxQuestionLen = 500
	}

	return &QueryService{
		generator:      generator,
		guard:          guard,
		runner:         runner,
		summarizer:     summarizer,
		registry:       registry,
		logger:         logger,
		maxQuestionLen: maxQuestionLen,
	}
}

func (s *QueryService) Answer(ctx context.Context, req QueryRequest) (QueryResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.Answer")
	defer span.End()

	question := strings.TrimSpace(req.Question)
	if question == "" {
		return QueryResult{}, fmt.Errorf("%w: question is required", ErrInvalidInput)
	}
	if len(question) > s.maxQuestionLen {
		return QueryResult{}, fmt.Errorf("%w: question exceeds %d characters", ErrInvalidInput, s.maxQuestionLen)
	}

	maxResults := req.MaxResults
	if maxResults <= 0 || maxResults > s.guard.MaxRows() {
		maxResults = s.guard.MaxRows()
	}

	start := time.Now()
	candidate, err := s.generator.GenerateSQL(ctx, question, req.Model, s.registry.PromptContext(), maxResults)
	if err != nil {
		s.logger.WarnContext(ctx, "sql generation failed", "error", err)
		return QueryResult{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if span.IsRecording() {
		span.SetAttributes(
			attribute.Int("query.question_len", len(question)),
			attribute.Int64("query.generate_ms", time.Since(start).Milliseconds()),
		)
	}

	approved, err := s.guard.ValidateWithLimit(candidate, maxResults)
	if err != nil {
		s.logger.WarnContext(ctx, "generated sql rejected", "error", err, "sql", candidate)
		return QueryResult{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	rows, err := s.runner.Run(ctx, approved)
	if err != nil {
		s.logger.WarnContext(ctx, "query execution failed", "error", err, "sql", approved)
		return QueryResult{}, err
	}

	s.logger.InfoContext(ctx, "question answered",
		"row_count", len(rows),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return QueryResult{
		SQL:      approved,
		Rows:     rows,
		RowCount: len(rows),
		Summary:  s.summarize(ctx, question, rows),
	}, nil
}

// summarize is best-effort: a provider failure degrades the response to no
// summary instead of failing the request.
func (s *QueryService) summarize(ctx context.Context, question string, rows []map[string]any) string {
	if s.summarizer == nil {
		return summarizeRows(rows)
	}

	summary, err := s.summarizer.Summarize(ctx, question, rows)
	if err != nil {
		s.logger.WarnContext(ctx, "summary generation failed", "error", err)
		return ""
	}

	return summary
}
