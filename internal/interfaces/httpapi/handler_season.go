package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/lamberpool/matchday/internal/domain/season"
	"github.com/lamberpool/matchday/internal/usecase"
)

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	tournamentID := r.PathValue("tournamentId")
	seasons, err := h.seasonService.ListByTournament(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonDTO, 0, len(seasons))
	for _, s := range seasons {
		items = append(items, seasonToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetActiveSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetActiveSeason")
	defer span.End()

	tournamentID := r.PathValue("tournamentId")
	active, err := h.seasonService.Active(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get active season failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(active))
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeason")
	defer span.End()

	var req createSeasonRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.seasonService.Create(ctx, usecase.CreateSeasonInput{
		Year:         req.Year,
		TournamentID: req.TournamentID,
		IsActive:     req.IsActive,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create season failed", "tournament_id", req.TournamentID, "year", req.Year, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.filterService.Invalidate(ctx)

	writeSuccess(ctx, w, http.StatusCreated, seasonToDTO(created))
}

func (h *Handler) DeleteSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSeason")
	defer span.End()

	seasonID := r.PathValue("id")
	if err := h.seasonService.Delete(ctx, seasonID); err != nil {
		h.logger.WarnContext(ctx, "delete season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.filterService.Invalidate(ctx)

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func seasonToDTO(s season.Season) seasonDTO {
	return seasonDTO{
		ID:           s.ID,
		Year:         s.Year,
		TournamentID: s.TournamentID,
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
	}
}

type seasonDTO struct {
	ID           string    `json:"id"`
	Year         int       `json:"year"`
	TournamentID string    `json:"tournamentId"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

type createSeasonRequest struct {
	Year         int    `json:"year" validate:"required,min=1900,max=2200"`
	TournamentID string `json:"tournamentId" validate:"required"`
	IsActive     bool   `json:"isActive"`
}
