package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListConferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListConferences")
	defer span.End()

	conferences, err := h.catalogService.ListConferences(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list conferences failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]conferenceDTO, 0, len(conferences))
	for _, c := range conferences {
		items = append(items, conferenceToDTO(ctx, c))
	}

	writeJSON(ctx, w, http.StatusOK, listEnvelope{Items: items, Count: len(items)})
}

func (h *Handler) ListDivisions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDivisions")
	defer span.End()

	conferenceID := strings.TrimSpace(r.URL.Query().Get("conference_id"))
	divisions, err := h.catalogService.ListDivisions(ctx, conferenceID)
	if err != nil {
		h.logger.WarnContext(ctx, "list divisions failed", "conference_id", conferenceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]divisionDTO, 0, len(divisions))
	for _, d := range divisions {
		items = append(items, divisionToDTO(ctx, d))
	}

	writeJSON(ctx, w, http.StatusOK, listEnvelope{Items: items, Count: len(items)})
}

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListVenues")
	defer span.End()

	state := strings.TrimSpace(r.URL.Query().Get("state"))
	venues, err := h.catalogService.ListVenues(ctx, state)
	if err != nil {
		h.logger.WarnContext(ctx, "list venues failed", "state", state, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]venueDTO, 0, len(venues))
	for _, v := range venues {
		items = append(items, venueToDTO(ctx, v))
	}

	writeJSON(ctx, w, http.StatusOK, listEnvelope{Items: items, Count: len(items)})
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.catalogService.ListSeasons(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonDTO, 0, len(seasons))
	for _, s := range seasons {
		items = append(items, seasonToDTO(ctx, s))
	}

	writeJSON(ctx, w, http.StatusOK, listEnvelope{Items: items, Count: len(items)})
}

func (h *Handler) ListCoaches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCoaches")
	defer span.End()

	teamID := strings.TrimSpace(r.URL.Query().Get("team_id"))
	coaches, err := h.catalogService.ListCoaches(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list coaches failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]coachDTO, 0, len(coaches))
	for _, c := range coaches {
		items = append(items, coachToDTO(ctx, c))
	}

	writeJSON(ctx, w, http.StatusOK, listEnvelope{Items: items, Count: len(items)})
}
