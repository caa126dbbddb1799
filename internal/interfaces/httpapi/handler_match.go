package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/lamberpool/matchday/internal/domain/match"
	"github.com/lamberpool/matchday/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	filter := match.Filter{
		CompetitionID: strings.TrimSpace(r.URL.Query().Get("competitionId")),
		TeamID:        strings.TrimSpace(r.URL.Query().Get("teamId")),
	}
	matches, err := h.matchService.List(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "competition_id", filter.CompetitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("id")
	found, err := h.matchService.GetByID(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(found))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
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

	created, err := h.matchService.Create(ctx, usecase.CreateMatchInput{
		CompetitionID: req.CompetitionID,
		Opponent:      req.Opponent,
		Date:          req.Date,
		GoalsFor:      req.GoalsFor,
		GoalsAgainst:  req.GoalsAgainst,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "competition_id", req.CompetitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID := r.PathValue("id")
	var req updateMatchRequest
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

	updated, err := h.matchService.Update(ctx, usecase.UpdateMatchInput{
		ID:           matchID,
		Opponent:     req.Opponent,
		Date:         req.Date,
		GoalsFor:     req.GoalsFor,
		GoalsAgainst: req.GoalsAgainst,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := r.PathValue("id")
	if err := h.matchService.Delete(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

// DeleteAllMatches removes every match, optionally scoped to a competition,
// and reports how many were deleted.
func (h *Handler) DeleteAllMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAllMatches")
	defer span.End()

	competitionID := strings.TrimSpace(r.URL.Query().Get("competitionId"))
	deleted, err := h.matchService.DeleteAll(ctx, competitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "delete all matches failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deletedCountDTO{Deleted: deleted})
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:            m.ID,
		CompetitionID: m.CompetitionID,
		TeamID:        m.TeamID,
		Opponent:      m.Opponent,
		Date:          m.Date,
		GoalsFor:      m.GoalsFor,
		GoalsAgainst:  m.GoalsAgainst,
		Result:        string(m.Result),
		CreatedAt:     m.CreatedAt,
	}
}

type matchDTO struct {
	ID            string    `json:"id"`
	CompetitionID string    `json:"competitionId"`
	TeamID        string    `json:"teamId"`
	Opponent      string    `json:"opponent"`
	Date          time.Time `json:"date"`
	GoalsFor      int       `json:"goalsFor"`
	GoalsAgainst  int       `json:"goalsAgainst"`
	Result        string    `json:"result"`
	CreatedAt     time.Time `json:"createdAt"`
}

type createMatchRequest struct {
	CompetitionID string    `json:"competitionId" validate:"required"`
	Opponent      string    `json:"opponent" validate:"required"`
	Date          time.Time `json:"date" validate:"required"`
	GoalsFor      int       `json:"goalsFor" validate:"min=0"`
	GoalsAgainst  int       `json:"goalsAgainst" validate:"min=0"`
}

type updateMatchRequest struct {
	Opponent     string    `json:"opponent" validate:"required"`
	Date         time.Time `json:"date" validate:"required"`
	GoalsFor     int       `json:"goalsFor" validate:"min=0"`
	GoalsAgainst int       `json:"goalsAgainst" validate:"min=0"`
}

type deletedCountDTO struct {
	Deleted int `json:"deleted"`
}
