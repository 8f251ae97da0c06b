package httpapi

import (
	"net/http"
	"strings"

	"github.com/gridironstats/ncaafb-api/internal/domain/playerstats"
	"github.com/gridironstats/ncaafb-api/internal/domain/ranking"
	"github.com/gridironstats/ncaafb-api/internal/usecase"
)

func (h *Handler) ListPlayerStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerStatistics")
	defer span.End()

	limit, offset, err := pageParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := playerstats.Filter{
		PlayerID: strings.TrimSpace(r.URL.Query().Get("player_id")),
		TeamID:   strings.TrimSpace(r.URL.Query().Get("team_id")),
		SeasonID: strings.TrimSpace(r.URL.Query().Get("season_id")),
		SortBy:   strings.TrimSpace(r.URL.Query().Get("sort_by")),
		Limit:    usecase.ClampLimit(limit),
		Offset:   offset,
	}

	lines, err := h.statsService.ListPlayerStatistics(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list player statistics failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]statLineDTO, 0, len(lines))
	for _, line := range lines {
		items = append(items, statLineToDTO(ctx, line))
	}

	writeJSON(ctx, w, http.StatusOK, listEnvelope{
		Items:  items,
		Count:  len(items),
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

func (h *Handler) ListRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRankings")
	defer span.End()

	limit, offset, err := pageParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	week, err := queryParamInt(r, "week")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := ranking.Filter{
		SeasonID: strings.TrimSpace(r.URL.Query().Get("season_id")),
		Week:     week,
		PollID:   strings.TrimSpace(r.URL.Query().Get("poll_id")),
		TeamID:   strings.TrimSpace(r.URL.Query().Get("team_id")),
		Limit:    usecase.ClampLimit(limit),
		Offset:   offset,
	}

	rankings, err := h.statsService.ListRankings(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list rankings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rankingDTO, 0, len(rankings))
	for _, item := range rankings {
		items = append(items, rankingToDTO(ctx, item))
	}

	writeJSON(ctx, w, http.StatusOK, listEnvelope{
		Items:  items,
		Count:  len(items),
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

func (h *Handler) StatsSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StatsSummary")
	defer span.End()

	summary, err := h.statsService.Summary(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "stats summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, statsSummaryToDTO(ctx, summary))
}
