package httpapi

import (
	"net/http"
	"strings"

	"github.com/gridironstats/ncaafb-api/internal/domain/team"
	"github.com/gridironstats/ncaafb-api/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	limit, offset, err := pageParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := team.Filter{
		ConferenceID: strings.TrimSpace(r.URL.Query().Get("conference_id")),
		DivisionID:   strings.TrimSpace(r.URL.Query().Get("division_id")),
		Search:       strings.TrimSpace(r.URL.Query().Get("search")),
		Limit:        usecase.ClampLimit(limit),
		Offset:       offset,
	}

	teams, total, err := h.teamService.ListTeams(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(ctx, t))
	}

	writeJSON(ctx, w, http.StatusOK, listEnvelope{
		Items:  items,
		Count:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	item, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, teamToDTO(ctx, item))
}
