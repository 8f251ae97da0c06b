package httpapi

import (
	"net/http"
	"strings"

	"github.com/gridironstats/ncaafb-api/internal/domain/player"
	"github.com/gridironstats/ncaafb-api/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	limit, offset, err := pageParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := player.Filter{
		TeamID:   strings.TrimSpace(r.URL.Query().Get("team_id")),
		Position: strings.TrimSpace(r.URL.Query().Get("position")),
		Status:   strings.TrimSpace(r.URL.Query().Get("status")),
		Search:   strings.TrimSpace(r.URL.Query().Get("search")),
		Limit:    usecase.ClampLimit(limit),
		Offset:   offset,
	}

	players, total, err := h.playerService.ListPlayers(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(ctx, p))
	}

	writeJSON(ctx, w, http.StatusOK, listEnvelope{
		Items:  items,
		Count:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	item, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playerToDTO(ctx, item))
}
