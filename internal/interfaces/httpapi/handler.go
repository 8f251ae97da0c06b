package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gridironstats/ncaafb-api/internal/platform/logging"
	"github.com/gridironstats/ncaafb-api/internal/schema"
	"github.com/gridironstats/ncaafb-api/internal/usecase"
)

// Pinger reports backing-store connectivity for the health endpoint.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	queryService   *usecase.QueryService
	teamService    *usecase.TeamService
	playerService  *usecase.PlayerService
	statsService   *usecase.StatsService
	catalogService *usecase.CatalogService
	registry       *schema.Registry
	pinger         Pinger
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	queryService *usecase.QueryService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	statsService *usecase.StatsService,
	catalogService *usecase.CatalogService,
	registry *schema.Registry,
	pinger Pinger,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		queryService:   queryService,
		teamService:    teamService,
		playerService:  playerService,
		statsService:   statsService,
		catalogService: catalogService,
		registry:       registry,
		pinger:         pinger,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// Health additionally checks backing-store connectivity.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health")
	defer span.End()

	status := http.StatusOK
	body := map[string]string{"status": "ok", "database": "ok"}
	if h.pinger != nil {
		if err := h.pinger.PingContext(ctx); err != nil {
			h.logger.WarnContext(ctx, "database ping failed", "error", err)
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
			body["database"] = "unavailable"
		}
	}

	writeJSON(ctx, w, status, body)
}

func (h *Handler) Schema(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Schema")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]any{"tables": h.registry.Tables()})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func queryParamInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative", usecase.ErrInvalidInput, name)
	}

	return value, nil
}

func pageParams(r *http.Request) (limit, offset int, err error) {
	limit, err = queryParamInt(r, "limit")
	if err != nil {
		return 0, 0, err
	}
	offset, err = queryParamInt(r, "offset")
	if err != nil {
		return 0, 0, err
	}

	return limit, offset, nil
}
