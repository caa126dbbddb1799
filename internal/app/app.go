package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/lamberpool/matchday/internal/config"
	"github.com/lamberpool/matchday/internal/infrastructure/assets"
	"github.com/lamberpool/matchday/internal/infrastructure/repository/postgres"
	"github.com/lamberpool/matchday/internal/interfaces/httpapi"
	idgen "github.com/lamberpool/matchday/internal/platform/id"
	"github.com/lamberpool/matchday/internal/platform/logging"
	"github.com/lamberpool/matchday/internal/platform/resilience"
	"github.com/lamberpool/matchday/internal/usecase"
)

// NewHTTPServer wires the full service: Postgres repositories, the use case
// layer, the asset store client and the HTTP router.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, *sqlx.DB, error) {
	db, err := OpenDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("bootstrap seed: %w", err)
	}

	ids := idgen.NewRandomGenerator()

	teamRepo := postgres.NewTeamRepository(db, ids)
	tournamentRepo := postgres.NewTournamentRepository(db)
	seasonRepo := postgres.NewSeasonRepository(db)
	competitionRepo := postgres.NewCompetitionRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	lineupRepo := postgres.NewLineupRepository(db)
	judgeRepo := postgres.NewJudgeRepository(db)
	guestJudgeRepo := postgres.NewGuestJudgeRepository(db)
	ratingRepo := postgres.NewRatingRepository(db)
	guestRatingRepo := postgres.NewGuestRatingRepository(db)
	photoRepo := postgres.NewPhotoRepository(db)
	championshipRepo := postgres.NewChampionshipRepository(db)

	var assetRemover usecase.AssetRemover
	if cfg.AssetStoreBaseURL != "" {
		assetRemover = assets.NewClient(assets.ClientConfig{
			BaseURL: cfg.AssetStoreBaseURL,
			APIKey:  cfg.AssetStoreAPIKey,
			Timeout: cfg.AssetStoreTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.AssetStoreCircuitEnabled,
				FailureThreshold: cfg.AssetStoreCircuitFailureCount,
				OpenTimeout:      cfg.AssetStoreCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.AssetStoreCircuitHalfOpenMaxRq,
			},
			Logger: logger,
		})
	} else {
		logger.Info("asset store disabled", "reason", "ASSET_STORE_BASE_URL empty")
	}

	teamService := usecase.NewTeamService(teamRepo, playerRepo, cfg.ClubTeamName)
	tournamentService := usecase.NewTournamentService(tournamentRepo, teamRepo, cfg.ClubTeamName, ids)
	seasonService := usecase.NewSeasonService(seasonRepo, tournamentRepo, ids)
	competitionService := usecase.NewCompetitionService(competitionRepo, seasonRepo, ids)
	matchService := usecase.NewMatchService(matchRepo, competitionRepo, teamRepo, photoRepo, assetRemover, cfg.ClubTeamName, logger, ids)
	rosterService := usecase.NewRosterService(playerRepo, teamRepo, lineupRepo, ratingRepo, guestRatingRepo, cfg.ClubTeamName, cfg.StatsWorkers, ids)
	lineupService := usecase.NewLineupService(lineupRepo, matchRepo, playerRepo, ratingRepo, guestRatingRepo, ids)
	judgeService := usecase.NewJudgeService(judgeRepo, guestJudgeRepo, matchRepo, ids)
	ratingService := usecase.NewRatingService(ratingRepo, guestRatingRepo, lineupRepo, judgeRepo, guestJudgeRepo, ids)
	photoService := usecase.NewPhotoService(photoRepo, matchRepo, assetRemover, logger, ids)
	championshipService := usecase.NewChampionshipService(championshipRepo, ids)
	filterService := usecase.NewFilterService(tournamentRepo, seasonRepo, competitionRepo)

	handler := httpapi.NewHandler(
		teamService,
		tournamentService,
		seasonService,
		competitionService,
		matchService,
		rosterService,
		lineupService,
		judgeService,
		ratingService,
		photoService,
		championshipService,
		filterService,
		logger,
	)

	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		AdminCredentials: httpapi.AdminCredentials{
			Username:     cfg.AdminUser,
			PasswordHash: cfg.AdminPasswordHash,
		},
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = db.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, db, nil
}
