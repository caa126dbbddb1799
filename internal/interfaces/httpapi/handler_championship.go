package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/lamberpool/matchday/internal/domain/championship"
	"github.com/lamberpool/matchday/internal/usecase"
)

func (h *Handler) ListChampionships(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChampionships")
	defer span.End()

	championships, err := h.championshipService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list championships failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, championshipsToDTO(championships))
}

func (h *Handler) ListChampionshipsByYear(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChampionshipsByYear")
	defer span.End()

	rawYear := r.PathValue("year")
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: year must be numeric, got %q", usecase.ErrInvalidInput, rawYear))
		return
	}

	championships, err := h.championshipService.ListByYear(ctx, year)
	if err != nil {
		h.logger.WarnContext(ctx, "list championships by year failed", "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, championshipsToDTO(championships))
}

func (h *Handler) CreateChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateChampionship")
	defer span.End()

	var req saveChampionshipRequest
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

	created, err := h.championshipService.Create(ctx, req.toInput(""))
	if err != nil {
		h.logger.WarnContext(ctx, "create championship failed", "year", req.Year, "title", req.Title, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, championshipToDTO(created))
}

func (h *Handler) UpdateChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateChampionship")
	defer span.End()

	championshipID := r.PathValue("id")
	var req saveChampionshipRequest
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

	updated, err := h.championshipService.Update(ctx, req.toInput(championshipID))
	if err != nil {
		h.logger.WarnContext(ctx, "update championship failed", "championship_id", championshipID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, championshipToDTO(updated))
}

func (h *Handler) DeleteChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteChampionship")
	defer span.End()

	championshipID := r.PathValue("id")
	if err := h.championshipService.Delete(ctx, championshipID); err != nil {
		h.logger.WarnContext(ctx, "delete championship failed", "championship_id", championshipID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func championshipsToDTO(championships []championship.Championship) []championshipDTO {
	items := make([]championshipDTO, 0, len(championships))
	for _, c := range championships {
		items = append(items, championshipToDTO(c))
	}
	return items
}

func championshipToDTO(c championship.Championship) championshipDTO {
	return championshipDTO{
		ID:           c.ID,
		Year:         c.Year,
		SeasonLabel:  c.SeasonLabel,
		Division:     c.Division,
		Tournament:   c.Tournament,
		Title:        c.Title,
		JerseyURL:    c.JerseyURL,
		AltJerseyURL: c.AltJerseyURL,
		Description:  c.Description,
		SortOrder:    c.SortOrder,
		CreatedAt:    c.CreatedAt,
	}
}

func (req saveChampionshipRequest) toInput(id string) usecase.SaveChampionshipInput {
	return usecase.SaveChampionshipInput{
		ID:           id,
		Year:         req.Year,
		SeasonLabel:  req.SeasonLabel,
		Division:     req.Division,
		Tournament:   req.Tournament,
		Title:        req.Title,
		JerseyURL:    req.JerseyURL,
		AltJerseyURL: req.AltJerseyURL,
		Description:  req.Description,
		SortOrder:    req.SortOrder,
	}
}

type championshipDTO struct {
	ID           string    `json:"id"`
	Year         int       `json:"year"`
	SeasonLabel  string    `json:"seasonLabel"`
	Division     string    `json:"division"`
	Tournament   string    `json:"tournament"`
	Title        string    `json:"title"`
	JerseyURL    *string   `json:"jerseyUrl"`
	AltJerseyURL *string   `json:"altJerseyUrl"`
	Description  *string   `json:"description"`
	SortOrder    int       `json:"sortOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

type saveChampionshipRequest struct {
	Year         int     `json:"year" validate:"required,min=1900,max=2200"`
	SeasonLabel  string  `json:"seasonLabel" validate:"required"`
	Division     string  `json:"division"`
	Tournament   string  `json:"tournament" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	JerseyURL    *string `json:"jerseyUrl"`
	AltJerseyURL *string `json:"altJerseyUrl"`
	Description  *string `json:"description"`
	SortOrder    int     `json:"sortOrder"`
}
