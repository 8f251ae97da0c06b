package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/gridironstats/ncaafb-api/internal/infrastructure/repository/memory"
	"github.com/gridironstats/ncaafb-api/internal/platform/cache"
	"github.com/gridironstats/ncaafb-api/internal/schema"
	"github.com/gridironstats/ncaafb-api/internal/sqlguard"
	"github.com/gridironstats/ncaafb-api/internal/usecase"
)

type stubGenerator struct {
	sql string
	err error
}

func (g *stubGenerator) GenerateSQL(_ context.Context, _, _, _ string, _ int) (string, error) {
	return g.sql, g.err
}

type stubRunner struct {
	rows []map[string]any
	err  error
}

func (r *stubRunner) Run(_ context.Context, _ string) ([]map[string]any, error) {
	return r.rows, r.err
}

func newTestRouter(t *testing.T, gen usecase.SQLGenerator, run usecase.QueryRunner) http.Handler {
	t.Helper()

	registry := schema.NewRegistry()
	queryService := usecase.NewQueryService(gen, sqlguard.New(registry, 100), run, nil, registry, nil, 500)

	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	seasonRepo := memory.NewSeasonRepository(memory.SeedSeasons())
	statsService := usecase.NewStatsService(
		memory.NewStatsRepository(memory.SeedStatLines()),
		memory.NewRankingRepository(memory.SeedRankings()),
		teamRepo,
		playerRepo,
		seasonRepo,
		memory.NewCoachRepository(memory.SeedCoaches()),
		memory.NewVenueRepository(memory.SeedVenues()),
		memory.NewConferenceRepository(memory.SeedConferences(), memory.SeedTeams()),
		cache.NewStore(time.Minute),
		4,
	)
	catalogService := usecase.NewCatalogService(
		memory.NewConferenceRepository(memory.SeedConferences(), memory.SeedTeams()),
		memory.NewDivisionRepository(memory.SeedDivisions()),
		memory.NewVenueRepository(memory.SeedVenues()),
		seasonRepo,
		memory.NewCoachRepository(memory.SeedCoaches()),
	)

	handler := NewHandler(
		queryService,
		usecase.NewTeamService(teamRepo),
		usecase.NewPlayerService(playerRepo),
		statsService,
		catalogService,
		registry,
		nil,
		nil,
	)

	return NewRouter(handler, nil, true, []string{"*"})
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestHandler_AnswerQuery(t *testing.T) {
	gen := &stubGenerator{sql: "SELECT market, name FROM teams"}
	run := &stubRunner{rows: []map[string]any{{"market": "Alabama", "name": "Crimson Tide"}}}
	router := newTestRouter(t, gen, run)

	rec := doRequest(t, router, http.MethodPost, "/query", `{"question":"Which teams are in the SEC?"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	sql, _ := body["sql"].(string)
	if !strings.Contains(sql, "LIMIT 100") {
		t.Fatalf("expected row cap in sql, got %q", sql)
	}
	if got, _ := body["row_count"].(float64); got != 1 {
		t.Fatalf("row_count = %v, want 1", body["row_count"])
	}
	if _, ok := body["summary"]; !ok {
		t.Fatal("expected summary key in response")
	}
}

func TestHandler_AnswerQuery_RejectsUnknownField(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{sql: "SELECT 1"}, &stubRunner{})

	rec := doRequest(t, router, http.MethodPost, "/query", `{"question":"hi","bogus":true}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decodeBody(t, rec)
	if got, _ := body["kind"].(string); got != "invalid_input" {
		t.Fatalf("kind = %v, want invalid_input", body["kind"])
	}
}

func TestHandler_AnswerQuery_MissingQuestion(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{sql: "SELECT 1"}, &stubRunner{})

	rec := doRequest(t, router, http.MethodPost, "/query", `{}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_AnswerQuery_GenerationFailure(t *testing.T) {
	gen := &stubGenerator{err: usecase.ErrGeneration}
	router := newTestRouter(t, gen, &stubRunner{})

	rec := doRequest(t, router, http.MethodPost, "/query", `{"question":"anything"}`)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	body := decodeBody(t, rec)
	if got, _ := body["kind"].(string); got != "generation" {
		t.Fatalf("kind = %v, want generation", body["kind"])
	}
}

func TestHandler_ListTeams_Envelope(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{sql: "SELECT 1"}, &stubRunner{})

	rec := doRequest(t, router, http.MethodGet, "/api/teams?limit=2", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	items, ok := body["items"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("items = %v, want 2 entries", body["items"])
	}
	if got, _ := body["count"].(float64); got != 4 {
		t.Fatalf("count = %v, want 4", body["count"])
	}
	if got, _ := body["limit"].(float64); got != 2 {
		t.Fatalf("limit = %v, want 2", body["limit"])
	}
}

func TestHandler_ListTeams_InvalidLimit(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{sql: "SELECT 1"}, &stubRunner{})

	rec := doRequest(t, router, http.MethodGet, "/api/teams?limit=abc", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_GetTeam_NotFound(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{sql: "SELECT 1"}, &stubRunner{})

	rec := doRequest(t, router, http.MethodGet, "/api/teams/team-missing", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := decodeBody(t, rec)
	if got, _ := body["kind"].(string); got != "not_found" {
		t.Fatalf("kind = %v, want not_found", body["kind"])
	}
}

func TestHandler_GetPlayer(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{sql: "SELECT 1"}, &stubRunner{})

	rec := doRequest(t, router, http.MethodGet, "/api/players/player-miller", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if got, _ := body["full_name"].(string); got != "Jordan Miller" {
		t.Fatalf("full_name = %v, want Jordan Miller", body["full_name"])
	}
}

func TestHandler_ListPlayerStatistics_RejectsUnknownSort(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{sql: "SELECT 1"}, &stubRunner{})

	rec := doRequest(t, router, http.MethodGet, "/api/player-statistics?sort_by=salary", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_ListRankings_FiltersByWeek(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{sql: "SELECT 1"}, &stubRunner{})

	rec := doRequest(t, router, http.MethodGet, "/api/rankings?week=13", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	items, _ := body["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
}

func TestHandler_StatsSummary(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{sql: "SELECT 1"}, &stubRunner{})

	rec := doRequest(t, router, http.MethodGet, "/api/stats/summary", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if got, _ := body["team_count"].(float64); got != 4 {
		t.Fatalf("team_count = %v, want 4", body["team_count"])
	}
	if got, _ := body["conference_count"].(float64); got != 2 {
		t.Fatalf("conference_count = %v, want 2", body["conference_count"])
	}
}

func TestHandler_ListConferences_IncludesTeamCounts(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{sql: "SELECT 1"}, &stubRunner{})

	rec := doRequest(t, router, http.MethodGet, "/api/conferences", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	items, _ := body["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	first, _ := items[0].(map[string]any)
	if got, _ := first["team_count"].(float64); got != 2 {
		t.Fatalf("team_count = %v, want 2", first["team_count"])
	}
}

func TestHandler_Schema(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{sql: "SELECT 1"}, &stubRunner{})

	rec := doRequest(t, router, http.MethodGet, "/schema", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	tables, _ := body["tables"].([]any)
	if len(tables) != 9 {
		t.Fatalf("len(tables) = %d, want 9", len(tables))
	}
}

func TestHandler_Healthz(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{sql: "SELECT 1"}, &stubRunner{})

	rec := doRequest(t, router, http.MethodGet, "/healthz", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
