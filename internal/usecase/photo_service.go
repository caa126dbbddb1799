package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/lamberpool/matchday/internal/domain/match"
	"github.com/lamberpool/matchday/internal/domain/photo"
	"github.com/lamberpool/matchday/internal/platform/id"
	"github.com/lamberpool/matchday/internal/platform/logging"
)

type CreatePhotoInput struct {
	MatchID string
	URL     string
	AssetID string
	// SizeBytes is the declared upload size; zero means unknown.
	SizeBytes int64
}

type PhotoService struct {
	photoRepo photo.Repository
	matchRepo match.Repository
	assets    AssetRemover
	logger    *logging.Logger
	ids       id.Generator
	now       func() time.Time
}

func NewPhotoService(
	photoRepo photo.Repository,
	matchRepo match.Repository,
	assets AssetRemover,
	logger *logging.Logger,
	ids id.Generator,
) *PhotoService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PhotoService{
		photoRepo: photoRepo,
		matchRepo: matchRepo,
		assets:    assets,
		logger:    logger,
		ids:       ids,
		now:       time.Now,
	}
}

func (s *PhotoService) ListByMatch(ctx context.Context, matchID string) ([]photo.Photo, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	if err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}

	items, err := s.photoRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list match photos: %w", err)
	}
	return items, nil
}

func (s *PhotoService) Create(ctx context.Context, input CreatePhotoInput) (photo.Photo, error) {
	input.MatchID = strings.TrimSpace(input.MatchID)
	input.URL = strings.TrimSpace(input.URL)
	input.AssetID = strings.TrimSpace(input.AssetID)
	if input.MatchID == "" {
		return photo.Photo{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if input.URL == "" {
		return photo.Photo{}, fmt.Errorf("%w: photo url is required", ErrInvalidInput)
	}
	if parsed, err := url.Parse(input.URL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return photo.Photo{}, fmt.Errorf("%w: photo url must be absolute", ErrInvalidInput)
	}
	if input.SizeBytes > photo.MaxUploadBytes {
		return photo.Photo{}, fmt.Errorf("%w: photo exceeds %d bytes", ErrInvalidInput, photo.MaxUploadBytes)
	}

	if err := s.requireMatch(ctx, input.MatchID); err != nil {
		return photo.Photo{}, err
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return photo.Photo{}, fmt.Errorf("generate photo id: %w", err)
	}

	created, err := s.photoRepo.Create(ctx, photo.Photo{
		ID:         newID,
		MatchID:    input.MatchID,
		URL:        input.URL,
		AssetID:    input.AssetID,
		UploadedAt: s.now().UTC(),
	})
	if err != nil {
		return photo.Photo{}, fmt.Errorf("create photo: %w", err)
	}

	return created, nil
}

// Delete removes the photo record, then tries to remove the stored binary.
// The external delete is best-effort; a failure is logged and swallowed.
func (s *PhotoService) Delete(ctx context.Context, photoID string) error {
	photoID = strings.TrimSpace(photoID)
	if photoID == "" {
		return fmt.Errorf("%w: photo id is required", ErrInvalidInput)
	}

	item, exists, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return fmt.Errorf("get photo by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: photo=%s", ErrNotFound, photoID)
	}

	if err := s.photoRepo.Delete(ctx, photoID); err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}

	if s.assets != nil && item.AssetID != "" {
		if err := s.assets.Remove(ctx, item.AssetID); err != nil {
			s.logger.WarnContext(ctx, "asset cleanup failed",
				"photo_id", item.ID,
				"asset_id", item.AssetID,
				"error", err,
			)
		}
	}
	return nil
}

func (s *PhotoService) requireMatch(ctx context.Context, matchID string) error {
	_, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return nil
}
