package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lamberpool/matchday/internal/domain/championship"
	"github.com/lamberpool/matchday/internal/platform/id"
)

type SaveChampionshipInput struct {
	ID           string
	Year         int
	SeasonLabel  string
	Division     string
	Tournament   string
	Title        string
	JerseyURL    *string
	AltJerseyURL *string
	Description  *string
	SortOrder    int
}

type ChampionshipService struct {
	repo championship.Repository
	ids  id.Generator
	now  func() time.Time
}

func NewChampionshipService(repo championship.Repository, ids id.Generator) *ChampionshipService {
	return &ChampionshipService{
		repo: repo,
		ids:  ids,
		now:  time.Now,
	}
}

func (s *ChampionshipService) List(ctx context.Context) ([]championship.Championship, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list championships: %w", err)
	}
	return items, nil
}

func (s *ChampionshipService) ListByYear(ctx context.Context, year int) ([]championship.Championship, error) {
	if year < seasonYearMin || year > seasonYearMax {
		return nil, fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, seasonYearMin, seasonYearMax)
	}

	items, err := s.repo.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("list championships by year: %w", err)
	}
	return items, nil
}

func (s *ChampionshipService) Create(ctx context.Context, input SaveChampionshipInput) (championship.Championship, error) {
	item, err := s.validated(input)
	if err != nil {
		return championship.Championship{}, err
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return championship.Championship{}, fmt.Errorf("generate championship id: %w", err)
	}
	item.ID = newID
	item.CreatedAt = s.now().UTC()

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, championship.ErrDuplicate) {
			return championship.Championship{}, fmt.Errorf("%w: championship for %d %s %s", ErrConflict, item.Year, item.SeasonLabel, item.Division)
		}
		return championship.Championship{}, fmt.Errorf("create championship: %w", err)
	}
	return created, nil
}

func (s *ChampionshipService) Update(ctx context.Context, input SaveChampionshipInput) (championship.Championship, error) {
	input.ID = strings.TrimSpace(input.ID)
	if input.ID == "" {
		return championship.Championship{}, fmt.Errorf("%w: championship id is required", ErrInvalidInput)
	}

	existing, exists, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return championship.Championship{}, fmt.Errorf("get championship by id: %w", err)
	}
	if !exists {
		return championship.Championship{}, fmt.Errorf("%w: championship=%s", ErrNotFound, input.ID)
	}

	item, err := s.validated(input)
	if err != nil {
		return championship.Championship{}, err
	}
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		if errors.Is(err, championship.ErrDuplicate) {
			return championship.Championship{}, fmt.Errorf("%w: championship for %d %s %s", ErrConflict, item.Year, item.SeasonLabel, item.Division)
		}
		return championship.Championship{}, fmt.Errorf("update championship: %w", err)
	}
	return updated, nil
}

func (s *ChampionshipService) Delete(ctx context.Context, championshipID string) error {
	championshipID = strings.TrimSpace(championshipID)
	if championshipID == "" {
		return fmt.Errorf("%w: championship id is required", ErrInvalidInput)
	}

	_, exists, err := s.repo.GetByID(ctx, championshipID)
	if err != nil {
		return fmt.Errorf("get championship by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: championship=%s", ErrNotFound, championshipID)
	}

	if err := s.repo.Delete(ctx, championshipID); err != nil {
		return fmt.Errorf("delete championship: %w", err)
	}
	return nil
}

func (s *ChampionshipService) validated(input SaveChampionshipInput) (championship.Championship, error) {
	input.SeasonLabel = strings.TrimSpace(input.SeasonLabel)
	input.Division = strings.TrimSpace(input.Division)
	input.Tournament = strings.TrimSpace(input.Tournament)
	input.Title = strings.TrimSpace(input.Title)

	if input.Year < seasonYearMin || input.Year > seasonYearMax {
		return championship.Championship{}, fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, seasonYearMin, seasonYearMax)
	}
	if input.SeasonLabel == "" {
		return championship.Championship{}, fmt.Errorf("%w: season label is required", ErrInvalidInput)
	}
	if input.Division == "" {
		return championship.Championship{}, fmt.Errorf("%w: division is required", ErrInvalidInput)
	}
	if input.Title == "" {
		return championship.Championship{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	return championship.Championship{
		Year:         input.Year,
		SeasonLabel:  input.SeasonLabel,
		Division:     input.Division,
		Tournament:   input.Tournament,
		Title:        input.Title,
		JerseyURL:    input.JerseyURL,
		AltJerseyURL: input.AltJerseyURL,
		Description:  input.Description,
		SortOrder:    input.SortOrder,
	}, nil
}
