package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/lamberpool/matchday/internal/domain/photo"
	"github.com/lamberpool/matchday/internal/usecase"
)

// maxPhotoPayloadBytes caps the photo create payload at 5 MiB.
const maxPhotoPayloadBytes = 5 << 20

func (h *Handler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPhotos")
	defer span.End()

	matchID := r.PathValue("matchId")
	photos, err := h.photoService.ListByMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list photos failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]photoDTO, 0, len(photos))
	for _, p := range photos {
		items = append(items, photoToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePhoto")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoPayloadBytes)

	var req createPhotoRequest
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

	created, err := h.photoService.Create(ctx, usecase.CreatePhotoInput{
		MatchID:   req.MatchID,
		URL:       req.URL,
		AssetID:   req.AssetID,
		SizeBytes: req.SizeBytes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create photo failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, photoToDTO(created))
}

// DeletePhoto removes the record and asks the external asset store to
// delete the stored file. Asset store failures are logged, not surfaced.
func (h *Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePhoto")
	defer span.End()

	photoID := r.PathValue("id")
	if err := h.photoService.Delete(ctx, photoID); err != nil {
		h.logger.WarnContext(ctx, "delete photo failed", "photo_id", photoID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func photoToDTO(p photo.Photo) photoDTO {
	return photoDTO{
		ID:         p.ID,
		MatchID:    p.MatchID,
		URL:        p.URL,
		AssetID:    p.AssetID,
		UploadedAt: p.UploadedAt,
	}
}

type photoDTO struct {
	ID         string    `json:"id"`
	MatchID    string    `json:"matchId"`
	URL        string    `json:"url"`
	AssetID    string    `json:"assetId"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type createPhotoRequest struct {
	MatchID   string `json:"matchId" validate:"required"`
	URL       string `json:"url" validate:"required,url"`
	AssetID   string `json:"assetId"`
	SizeBytes int64  `json:"sizeBytes" validate:"min=0"`
}
