package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/gridironstats/ncaafb-api/external/gemini"
	"github.com/gridironstats/ncaafb-api/internal/config"
	"github.com/gridironstats/ncaafb-api/internal/domain/conference"
	"github.com/gridironstats/ncaafb-api/internal/domain/player"
	"github.com/gridironstats/ncaafb-api/internal/domain/ranking"
	"github.com/gridironstats/ncaafb-api/internal/domain/season"
	"github.com/gridironstats/ncaafb-api/internal/domain/team"
	cacherepo "github.com/gridironstats/ncaafb-api/internal/infrastructure/repository/cache"
	"github.com/gridironstats/ncaafb-api/internal/infrastructure/repository/postgres"
	"github.com/gridironstats/ncaafb-api/internal/interfaces/httpapi"
	"github.com/gridironstats/ncaafb-api/internal/platform/cache"
	"github.com/gridironstats/ncaafb-api/internal/platform/logging"
	"github.com/gridironstats/ncaafb-api/internal/schema"
	"github.com/gridironstats/ncaafb-api/internal/sqlguard"
	"github.com/gridironstats/ncaafb-api/internal/usecase"
)

// App owns the HTTP server and the resources behind it.
type App struct {
	Server *http.Server

	db     *sqlx.DB
	logger *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.DBSeedOnBoot {
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bootstrap seed: %w", err)
		}
	}

	registry := schema.NewRegistry()
	guard := sqlguard.New(registry, cfg.QueryMaxRows)

	geminiClient := gemini.NewClient(gemini.ClientConfig{
		HTTPClient:     &http.Client{Timeout: cfg.GeminiTimeout},
		BaseURL:        cfg.GeminiBaseURL,
		APIKey:         cfg.GeminiAPIKey,
		Model:          cfg.GeminiModel,
		Timeout:        cfg.GeminiTimeout,
		MaxRetries:     cfg.GeminiMaxRetries,
		Logger:         logger,
		CircuitBreaker: cfg.GeminiCircuit,
	})

	runner := postgres.NewQueryRunner(db, cfg.DBAcquireTimeout, cfg.QueryTimeout)
	queryService := usecase.NewQueryService(
		geminiClient,
		guard,
		runner,
		geminiClient,
		registry,
		logger,
		cfg.QueryMaxQuestionLen,
	)

	var (
		teamRepo       team.Repository       = postgres.NewTeamRepository(db)
		playerRepo     player.Repository     = postgres.NewPlayerRepository(db)
		rankingRepo    ranking.Repository    = postgres.NewRankingRepository(db)
		seasonRepo     season.Repository     = postgres.NewSeasonRepository(db)
		conferenceRepo conference.Repository = postgres.NewConferenceRepository(db)
	)
	statsRepo := postgres.NewPlayerStatsRepository(db)
	divisionRepo := postgres.NewDivisionRepository(db)
	venueRepo := postgres.NewVenueRepository(db)
	coachRepo := postgres.NewCoachRepository(db)

	var summaryCache *cache.Store
	if cfg.CacheEnabled {
		summaryCache = cache.NewStore(cfg.CacheTTL)
		teamRepo = cacherepo.NewTeamRepository(teamRepo, summaryCache)
		playerRepo = cacherepo.NewPlayerRepository(playerRepo, summaryCache)
		rankingRepo = cacherepo.NewRankingRepository(rankingRepo, summaryCache)
		seasonRepo = cacherepo.NewSeasonRepository(seasonRepo, summaryCache)
		conferenceRepo = cacherepo.NewConferenceRepository(conferenceRepo, summaryCache)
	}

	statsService := usecase.NewStatsService(
		statsRepo,
		rankingRepo,
		teamRepo,
		playerRepo,
		seasonRepo,
		coachRepo,
		venueRepo,
		conferenceRepo,
		summaryCache,
		cfg.SummaryWorkers,
	)
	catalogService := usecase.NewCatalogService(conferenceRepo, divisionRepo, venueRepo, seasonRepo, coachRepo)

	handler := httpapi.NewHandler(
		queryService,
		usecase.NewTeamService(teamRepo),
		usecase.NewPlayerService(playerRepo),
		statsService,
		catalogService,
		registry,
		db,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		_ = db.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, db: db, logger: logger}, nil
}

// Shutdown drains the HTTP server and closes the database pool.
func (a *App) Shutdown(ctx context.Context) error {
	var firstErr error
	if err := a.Server.Shutdown(ctx); err != nil {
		firstErr = fmt.Errorf("shutdown http server: %w", err)
	}
	if err := a.db.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close database: %w", err)
	}

	return firstErr
}

func openDatabase(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
