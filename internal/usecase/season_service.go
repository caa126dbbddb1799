package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lamberpool/matchday/internal/domain/season"
	"github.com/lamberpool/matchday/internal/domain/tournament"
	"github.com/lamberpool/matchday/internal/platform/id"
)

const (
	seasonYearMin = 1900
	seasonYearMax = 2200
)

type CreateSeasonInput struct {
	Year         int
	TournamentID string
	IsActive     bool
}

type SeasonService struct {
	seasonRepo     season.Repository
	tournamentRepo tournament.Repository
	ids            id.Generator
	now            func() time.Time
}

func NewSeasonService(seasonRepo season.Repository, tournamentRepo tournament.Repository, ids id.Generator) *SeasonService {
	return &SeasonService{
		seasonRepo:     seasonRepo,
		tournamentRepo: tournamentRepo,
		ids:            ids,
		now:            time.Now,
	}
}

func (s *SeasonService) ListByTournament(ctx context.Context, tournamentID string) ([]season.Season, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	if err := s.requireTournament(ctx, tournamentID); err != nil {
		return nil, err
	}

	items, err := s.seasonRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return items, nil
}

func (s *SeasonService) Active(ctx context.Context, tournamentID string) (season.Season, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return season.Season{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	item, exists, err := s.seasonRepo.ActiveByTournament(ctx, tournamentID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get active season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: no active season for tournament=%s", ErrNotFound, tournamentID)
	}
	return item, nil
}

func (s *SeasonService) Create(ctx context.Context, input CreateSeasonInput) (season.Season, error) {
	input.TournamentID = strings.TrimSpace(input.TournamentID)
	if input.TournamentID == "" {
		return season.Season{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if input.Year < seasonYearMin || input.Year > seasonYearMax {
		return season.Season{}, fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, seasonYearMin, seasonYearMax)
	}

	if err := s.requireTournament(ctx, input.TournamentID); err != nil {
		return season.Season{}, err
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return season.Season{}, fmt.Errorf("generate season id: %w", err)
	}

	created, err := s.seasonRepo.Create(ctx, season.Season{
		ID:           newID,
		Year:         input.Year,
		TournamentID: input.TournamentID,
		IsActive:     input.IsActive,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, season.ErrDuplicateYear) {
			return season.Season{}, fmt.Errorf("%w: season %d", ErrConflict, input.Year)
		}
		return season.Season{}, fmt.Errorf("create season: %w", err)
	}

	return created, nil
}

// Delete removes the season with all competitions and matches under it. It
// does not cascade to the parent tournament.
func (s *SeasonService) Delete(ctx context.Context, seasonID string) error {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("get season by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	if err := s.seasonRepo.Delete(ctx, seasonID); err != nil {
		return fmt.Errorf("delete season: %w", err)
	}
	return nil
}

func (s *SeasonService) requireTournament(ctx context.Context, tournamentID string) error {
	_, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("get tournament by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}
	return nil
}
