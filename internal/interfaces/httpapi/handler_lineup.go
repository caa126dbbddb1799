package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/lamberpool/matchday/internal/usecase"
)

// ListMatchPlayers returns the lineup of a match with each entry enriched
// by its player and pooled rating average.
func (h *Handler) ListMatchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchPlayers")
	defer span.End()

	matchID := r.PathValue("matchId")
	entries, err := h.lineupService.ListByMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list match players failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchPlayerDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, matchPlayerToDTO(entry))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateMatchPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatchPlayer")
	defer span.End()

	var req createMatchPlayerRequest
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

	created, err := h.lineupService.Create(ctx, usecase.CreateLineupEntryInput{
		MatchID:  req.MatchID,
		PlayerID: req.PlayerID,
		Position: req.Position,
		Goals:    req.Goals,
		Cards:    req.Cards,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match player failed", "match_id", req.MatchID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchPlayerToDTO(created))
}

func (h *Handler) UpdateMatchPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchPlayer")
	defer span.End()

	entryID := r.PathValue("id")
	var req updateMatchPlayerRequest
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

	updated, err := h.lineupService.Update(ctx, usecase.UpdateLineupEntryInput{
		ID:       entryID,
		Position: req.Position,
		Goals:    req.Goals,
		Cards:    req.Cards,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update match player failed", "match_player_id", entryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchPlayerToDTO(updated))
}

func matchPlayerToDTO(detail usecase.LineupEntryDetail) matchPlayerDTO {
	return matchPlayerDTO{
		ID:            detail.Entry.ID,
		MatchID:       detail.Entry.MatchID,
		PlayerID:      detail.Entry.PlayerID,
		Position:      detail.Entry.Position,
		Goals:         detail.Entry.Goals,
		Cards:         detail.Entry.Cards,
		Player:        playerToDTO(detail.Player),
		AverageRating: detail.AverageRating,
		RatingsCount:  detail.RatingsCount,
		CreatedAt:     detail.Entry.CreatedAt,
	}
}

type matchPlayerDTO struct {
	ID            string    `json:"id"`
	MatchID       string    `json:"matchId"`
	PlayerID      string    `json:"playerId"`
	Position      string    `json:"position"`
	Goals         int       `json:"goals"`
	Cards         string    `json:"cards"`
	Player        playerDTO `json:"player"`
	AverageRating float64   `json:"averageRating"`
	RatingsCount  int       `json:"ratingsCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type createMatchPlayerRequest struct {
	MatchID  string `json:"matchId" validate:"required"`
	PlayerID string `json:"playerId" validate:"required"`
	Position string `json:"position" validate:"required"`
	Goals    int    `json:"goals" validate:"min=0"`
	Cards    string `json:"cards"`
}

type updateMatchPlayerRequest struct {
	Position string `json:"position" validate:"required"`
	Goals    int    `json:"goals" validate:"min=0"`
	Cards    string `json:"cards"`
}
