package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/lamberpool/matchday/internal/domain/rating"
	"github.com/lamberpool/matchday/internal/usecase"
)

// ListRatings returns every score for a lineup entry plus the pooled
// average across judge and guest judge ratings.
func (h *Handler) ListRatings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRatings")
	defer span.End()

	lineupID := r.PathValue("matchPlayerId")
	ratings, err := h.ratingService.ListByLineup(ctx, lineupID)
	if err != nil {
		h.logger.WarnContext(ctx, "list ratings failed", "match_player_id", lineupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupRatingsToDTO(ratings))
}

func (h *Handler) UpsertRating(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertRating")
	defer span.End()

	var req upsertRatingRequest
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

	saved, err := h.ratingService.Upsert(ctx, usecase.UpsertRatingInput{
		LineupID: req.MatchPlayerID,
		JudgeID:  req.JudgeID,
		Score:    req.Score,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "upsert rating failed", "match_player_id", req.MatchPlayerID, "judge_id", req.JudgeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ratingToDTO(saved))
}

// DeleteAllRatings removes judge ratings, optionally scoped to a single
// lineup entry, and reports how many were deleted.
func (h *Handler) DeleteAllRatings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAllRatings")
	defer span.End()

	lineupID := strings.TrimSpace(r.URL.Query().Get("matchPlayerId"))
	deleted, err := h.ratingService.DeleteAll(ctx, lineupID)
	if err != nil {
		h.logger.WarnContext(ctx, "delete ratings failed", "match_player_id", lineupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deletedCountDTO{Deleted: deleted})
}

func (h *Handler) ListGuestRatings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGuestRatings")
	defer span.End()

	lineupID := r.PathValue("matchPlayerId")
	ratings, err := h.ratingService.ListByLineup(ctx, lineupID)
	if err != nil {
		h.logger.WarnContext(ctx, "list guest ratings failed", "match_player_id", lineupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]guestRatingDTO, 0, len(ratings.GuestRatings))
	for _, g := range ratings.GuestRatings {
		items = append(items, guestRatingToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) UpsertGuestRating(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertGuestRating")
	defer span.End()

	var req upsertGuestRatingRequest
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

	saved, err := h.ratingService.UpsertGuest(ctx, usecase.UpsertGuestRatingInput{
		LineupID:     req.MatchPlayerID,
		GuestJudgeID: req.GuestJudgeID,
		Score:        req.Score,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "upsert guest rating failed", "match_player_id", req.MatchPlayerID, "guest_judge_id", req.GuestJudgeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, guestRatingToDTO(saved))
}

func (h *Handler) DeleteAllGuestRatings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAllGuestRatings")
	defer span.End()

	lineupID := strings.TrimSpace(r.URL.Query().Get("matchPlayerId"))
	deleted, err := h.ratingService.DeleteAllGuest(ctx, lineupID)
	if err != nil {
		h.logger.WarnContext(ctx, "delete guest ratings failed", "match_player_id", lineupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deletedCountDTO{Deleted: deleted})
}

func lineupRatingsToDTO(ratings usecase.LineupRatings) lineupRatingsDTO {
	items := make([]ratingDTO, 0, len(ratings.Ratings))
	for _, item := range ratings.Ratings {
		items = append(items, ratingToDTO(item))
	}
	guests := make([]guestRatingDTO, 0, len(ratings.GuestRatings))
	for _, item := range ratings.GuestRatings {
		guests = append(guests, guestRatingToDTO(item))
	}

	return lineupRatingsDTO{
		Ratings:       items,
		GuestRatings:  guests,
		AverageRating: ratings.AverageRating,
	}
}

func ratingToDTO(item rating.Rating) ratingDTO {
	return ratingDTO{
		ID:            item.ID,
		MatchPlayerID: item.LineupID,
		JudgeID:       item.JudgeID,
		Score:         item.Score,
		CreatedAt:     item.CreatedAt,
	}
}

func guestRatingToDTO(item rating.GuestRating) guestRatingDTO {
	return guestRatingDTO{
		ID:            item.ID,
		MatchPlayerID: item.LineupID,
		GuestJudgeID:  item.GuestJudgeID,
		Score:         item.Score,
		CreatedAt:     item.CreatedAt,
	}
}

type ratingDTO struct {
	ID            string    `json:"id"`
	MatchPlayerID string    `json:"matchPlayerId"`
	JudgeID       string    `json:"judgeId"`
	Score         int       `json:"score"`
	CreatedAt     time.Time `json:"createdAt"`
}

type guestRatingDTO struct {
	ID            string    `json:"id"`
	MatchPlayerID string    `json:"matchPlayerId"`
	GuestJudgeID  string    `json:"guestJudgeId"`
	Score         int       `json:"score"`
	CreatedAt     time.Time `json:"createdAt"`
}

type lineupRatingsDTO struct {
	Ratings       []ratingDTO      `json:"ratings"`
	GuestRatings  []guestRatingDTO `json:"guestRatings"`
	AverageRating float64          `json:"averageRating"`
}

type upsertRatingRequest struct {
	MatchPlayerID string `json:"matchPlayerId" validate:"required"`
	JudgeID       string `json:"judgeId" validate:"required"`
	Score         int    `json:"score" validate:"required,min=1,max=10"`
}

type upsertGuestRatingRequest struct {
	MatchPlayerID string `json:"matchPlayerId" validate:"required"`
	GuestJudgeID  string `json:"guestJudgeId" validate:"required"`
	Score         int    `json:"score" validate:"required,min=1,max=10"`
}
