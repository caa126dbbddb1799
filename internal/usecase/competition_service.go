package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/lamberpool/matchday/internal/domain/competition"
	"github.com/lamberpool/matchday/internal/domain/season"
	"github.com/lamberpool/matchday/internal/platform/id"
)

type CreateCompetitionInput struct {
	Name     string
	SeasonID string
	IsActive bool
}

type CompetitionService struct {
	competitionRepo competition.Repository
	seasonRepo      season.Repository
	ids             id.Generator
	now             func() time.Time
}

func NewCompetitionService(competitionRepo competition.Repository, seasonRepo season.Repository, ids id.Generator) *CompetitionService {
	return &CompetitionService{
		competitionRepo: competitionRepo,
		seasonRepo:      seasonRepo,
		ids:             ids,
		now:             time.Now,
	}
}

func (s *CompetitionService) ListBySeason(ctx context.Context, seasonID string) ([]competition.Competition, error) {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	if err := s.requireSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	items, err := s.competitionRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}
	return items, nil
}

func (s *CompetitionService) Active(ctx context.Context, seasonID string) (competition.Competition, error) {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return competition.Competition{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	item, exists, err := s.competitionRepo.ActiveBySeason(ctx, seasonID)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("get active competition: %w", err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: no active competition for season=%s", ErrNotFound, seasonID)
	}
	return item, nil
}

func (s *CompetitionService) GetByID(ctx context.Context, competitionID string) (competition.Competition, error) {
	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return competition.Competition{}, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}

	item, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("get competition by id: %w", err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionID)
	}
	return item, nil
}

func (s *CompetitionService) Create(ctx context.Context, input CreateCompetitionInput) (competition.Competition, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.SeasonID = strings.TrimSpace(input.SeasonID)
	if input.Name == "" {
		return competition.Competition{}, fmt.Errorf("%w: competition name is required", ErrInvalidInput)
	}
	if input.SeasonID == "" {
		return competition.Competition{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	if err := s.requireSeason(ctx, input.SeasonID); err != nil {
		return competition.Competition{}, err
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return competition.Competition{}, fmt.Errorf("generate competition id: %w", err)
	}

	created, err := s.competitionRepo.Create(ctx, competition.Competition{
		ID:        newID,
		Name:      input.Name,
		SeasonID:  input.SeasonID,
		IsActive:  input.IsActive,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, competition.ErrDuplicateName) {
			return competition.Competition{}, fmt.Errorf("%w: competition %q", ErrConflict, input.Name)
		}
		return competition.Competition{}, fmt.Errorf("create competition: %w", err)
	}

	return created, nil
}

// Delete removes the competition and cascades upward: an emptied season is
// deleted, and an emptied tournament after it. The team is never touched.
func (s *CompetitionService) Delete(ctx context.Context, competitionID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Delete")
	defer span.End()

	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}

	if _, err := s.GetByID(ctx, competitionID); err != nil {
		return err
	}

	if err := s.competitionRepo.DeleteCascade(ctx, competitionID); err != nil {
		return fmt.Errorf("delete competition cascade: %w", err)
	}
	return nil
}

func (s *CompetitionService) SetJersey(ctx context.Context, competitionID, jerseyURL string) (competition.Competition, error) {
	cleaned, err := s.cleanImageTarget(ctx, competitionID, jerseyURL)
	if err != nil {
		return competition.Competition{}, err
	}

	item, exists, err := s.competitionRepo.SetJerseyURL(ctx, strings.TrimSpace(competitionID), &cleaned)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("set competition jersey: %w", err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: competition=%s", ErrNotFound, strings.TrimSpace(competitionID))
	}
	return item, nil
}

func (s *CompetitionService) ClearJersey(ctx context.Context, competitionID string) (competition.Competition, error) {
	if _, err := s.GetByID(ctx, competitionID); err != nil {
		return competition.Competition{}, err
	}

	item, exists, err := s.competitionRepo.SetJerseyURL(ctx, strings.TrimSpace(competitionID), nil)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("clear competition jersey: %w", err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: competition=%s", ErrNotFound, strings.TrimSpace(competitionID))
	}
	return item, nil
}

func (s *CompetitionService) SetFinalTablePhoto(ctx context.Context, competitionID, photoURL string) (competition.Competition, error) {
	cleaned, err := s.cleanImageTarget(ctx, competitionID, photoURL)
	if err != nil {
		return competition.Competition{}, err
	}

	item, exists, err := s.competitionRepo.SetFinalTablePhotoURL(ctx, strings.TrimSpace(competitionID), &cleaned)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("set competition final table photo: %w", err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: competition=%s", ErrNotFound, strings.TrimSpace(competitionID))
	}
	return item, nil
}

func (s *CompetitionService) ClearFinalTablePhoto(ctx context.Context, competitionID string) (competition.Competition, error) {
	if _, err := s.GetByID(ctx, competitionID); err != nil {
		return competition.Competition{}, err
	}

	item, exists, err := s.competitionRepo.SetFinalTablePhotoURL(ctx, strings.TrimSpace(competitionID), nil)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("clear competition final table photo: %w", err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: competition=%s", ErrNotFound, strings.TrimSpace(competitionID))
	}
	return item, nil
}

func (s *CompetitionService) cleanImageTarget(ctx context.Context, competitionID, rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", fmt.Errorf("%w: image url is required", ErrInvalidInput)
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("%w: image url must be absolute", ErrInvalidInput)
	}

	if _, err := s.GetByID(ctx, competitionID); err != nil {
		return "", err
	}
	return rawURL, nil
}

func (s *CompetitionService) requireSeason(ctx context.Context, seasonID string) error {
	_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("get season by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}
	return nil
}
