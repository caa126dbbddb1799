package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/lamberpool/matchday/internal/domain/competition"
	"github.com/lamberpool/matchday/internal/usecase"
)

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	seasonID := r.PathValue("seasonId")
	competitions, err := h.competitionService.ListBySeason(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list competitions failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]competitionDTO, 0, len(competitions))
	for _, c := range competitions {
		items = append(items, competitionToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetActiveCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetActiveCompetition")
	defer span.End()

	seasonID := r.PathValue("seasonId")
	active, err := h.competitionService.Active(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get active competition failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, competitionToDTO(active))
}

func (h *Handler) CreateCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCompetition")
	defer span.End()

	var req createCompetitionRequest
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

	created, err := h.competitionService.Create(ctx, usecase.CreateCompetitionInput{
		Name:     req.Name,
		SeasonID: req.SeasonID,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create competition failed", "season_id", req.SeasonID, "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.filterService.Invalidate(ctx)

	writeSuccess(ctx, w, http.StatusCreated, competitionToDTO(created))
}

// DeleteCompetition removes the competition with its matches. Seasons and
// tournaments left without children are removed as well.
func (h *Handler) DeleteCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteCompetition")
	defer span.End()

	competitionID := r.PathValue("id")
	if err := h.competitionService.Delete(ctx, competitionID); err != nil {
		h.logger.WarnContext(ctx, "delete competition failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.filterService.Invalidate(ctx)

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) SetCompetitionJersey(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetCompetitionJersey")
	defer span.End()

	competitionID := r.PathValue("id")
	var req setImageRequest
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

	updated, err := h.competitionService.SetJersey(ctx, competitionID, req.URL)
	if err != nil {
		h.logger.WarnContext(ctx, "set competition jersey failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, competitionToDTO(updated))
}

func (h *Handler) ClearCompetitionJersey(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearCompetitionJersey")
	defer span.End()

	competitionID := r.PathValue("id")
	updated, err := h.competitionService.ClearJersey(ctx, competitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "clear competition jersey failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, competitionToDTO(updated))
}

func (h *Handler) SetCompetitionFinalTablePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetCompetitionFinalTablePhoto")
	defer span.End()

	competitionID := r.PathValue("id")
	var req setImageRequest
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

	updated, err := h.competitionService.SetFinalTablePhoto(ctx, competitionID, req.URL)
	if err != nil {
		h.logger.WarnContext(ctx, "set competition final table photo failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, competitionToDTO(updated))
}

func (h *Handler) ClearCompetitionFinalTablePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearCompetitionFinalTablePhoto")
	defer span.End()

	competitionID := r.PathValue("id")
	updated, err := h.competitionService.ClearFinalTablePhoto(ctx, competitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "clear competition final table photo failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, competitionToDTO(updated))
}

func competitionToDTO(c competition.Competition) competitionDTO {
	return competitionDTO{
		ID:                 c.ID,
		Name:               c.Name,
		SeasonID:           c.SeasonID,
		IsActive:           c.IsActive,
		JerseyURL:          c.JerseyURL,
		FinalTablePhotoURL: c.FinalTablePhotoURL,
		CreatedAt:          c.CreatedAt,
	}
}

type competitionDTO struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	SeasonID           string    `json:"seasonId"`
	IsActive           bool      `json:"isActive"`
	JerseyURL          *string   `json:"jerseyUrl"`
	FinalTablePhotoURL *string   `json:"finalTablePhotoUrl"`
	CreatedAt          time.Time `json:"createdAt"`
}

type createCompetitionRequest struct {
	Name     string `json:"name" validate:"required"`
	SeasonID string `json:"seasonId" validate:"required"`
	IsActive bool   `json:"isActive"`
}

type setImageRequest struct {
	URL string `json:"url" validate:"required,url"`
}
