package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /schema", handler.Schema)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerDataRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/teams", handler.ListTeams)
	mux.HandleFunc("GET /api/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /api/players", handler.ListPlayers)
	mux.HandleFunc("GET /api/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /api/player-statistics", handler.ListPlayerStatistics)
	mux.HandleFunc("GET /api/rankings", handler.ListRankings)
	mux.HandleFunc("GET /api/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /api/conferences", handler.ListConferences)
	mux.HandleFunc("GET /api/divisions", handler.ListDivisions)
	mux.HandleFunc("GET /api/venues", handler.ListVenues)
	mux.HandleFunc("GET /api/coaches", handler.ListCoaches)
	mux.HandleFunc("GET /api/stats/summary", handler.StatsSummary)
}

func registerQueryRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /query", handler.AnswerQuery)
}
