package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/lamberpool/matchday/internal/domain/judge"
	"github.com/lamberpool/matchday/internal/usecase"
)

func (h *Handler) ListJudges(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListJudges")
	defer span.End()

	judges, err := h.judgeService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list judges failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]judgeDTO, 0, len(judges))
	for _, j := range judges {
		items = append(items, judgeDTO{ID: j.ID, Name: j.Name, CreatedAt: j.CreatedAt})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateJudge(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateJudge")
	defer span.End()

	var req createJudgeRequest
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

	created, err := h.judgeService.Create(ctx, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "create judge failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, judgeDTO{ID: created.ID, Name: created.Name, CreatedAt: created.CreatedAt})
}

func (h *Handler) ListGuestJudges(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGuestJudges")
	defer span.End()

	matchID := r.PathValue("matchId")
	guests, err := h.judgeService.ListGuestsByMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list guest judges failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]guestJudgeDTO, 0, len(guests))
	for _, g := range guests {
		items = append(items, guestJudgeToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateGuestJudge(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGuestJudge")
	defer span.End()

	var req createGuestJudgeRequest
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

	created, err := h.judgeService.CreateGuest(ctx, req.MatchID, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "create guest judge failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, guestJudgeToDTO(created))
}

// DeleteGuestJudge removes the guest judge together with the ratings they
// submitted.
func (h *Handler) DeleteGuestJudge(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGuestJudge")
	defer span.End()

	guestJudgeID := r.PathValue("id")
	if err := h.judgeService.DeleteGuest(ctx, guestJudgeID); err != nil {
		h.logger.WarnContext(ctx, "delete guest judge failed", "guest_judge_id", guestJudgeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func guestJudgeToDTO(g judge.GuestJudge) guestJudgeDTO {
	return guestJudgeDTO{
		ID:        g.ID,
		MatchID:   g.MatchID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
	}
}

type judgeDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type guestJudgeDTO struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"matchId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type createJudgeRequest struct {
	Name string `json:"name" validate:"required"`
}

type createGuestJudgeRequest struct {
	MatchID string `json:"matchId" validate:"required"`
	Name    string `json:"name" validate:"required"`
}
