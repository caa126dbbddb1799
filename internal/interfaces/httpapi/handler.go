package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/lamberpool/matchday/internal/platform/logging"
	"github.com/lamberpool/matchday/internal/usecase"
)

type Handler struct {
	teamService         *usecase.TeamService
	tournamentService   *usecase.TournamentService
	seasonService       *usecase.SeasonService
	competitionService  *usecase.CompetitionService
	matchService        *usecase.MatchService
	rosterService       *usecase.RosterService
	lineupService       *usecase.LineupService
	judgeService        *usecase.JudgeService
	ratingService       *usecase.RatingService
	photoService        *usecase.PhotoService
	championshipService *usecase.ChampionshipService
	filterService       *usecase.FilterService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	tournamentService *usecase.TournamentService,
	seasonService *usecase.SeasonService,
	competitionService *usecase.CompetitionService,
	matchService *usecase.MatchService,
	rosterService *usecase.RosterService,
	lineupService *usecase.LineupService,
	judgeService *usecase.JudgeService,
	ratingService *usecase.RatingService,
	photoService *usecase.PhotoService,
	championshipService *usecase.ChampionshipService,
	filterService *usecase.FilterService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:         teamService,
		tournamentService:   tournamentService,
		seasonService:       seasonService,
		competitionService:  competitionService,
		matchService:        matchService,
		rosterService:       rosterService,
		lineupService:       lineupService,
		judgeService:        judgeService,
		ratingService:       ratingService,
		photoService:        photoService,
		championshipService: championshipService,
		filterService:       filterService,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
