package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/lamberpool/matchday/internal/domain/competition"
	"github.com/lamberpool/matchday/internal/domain/match"
	"github.com/lamberpool/matchday/internal/domain/photo"
	"github.com/lamberpool/matchday/internal/domain/team"
	"github.com/lamberpool/matchday/internal/platform/id"
	"github.com/lamberpool/matchday/internal/platform/logging"
)

// AssetRemover deletes stored binaries from the external image host.
type AssetRemover interface {
	Remove(ctx context.Context, assetID string) error
}

const assetCleanupParallelism = 4

type CreateMatchInput struct {
	CompetitionID string
	Opponent      string
	Date          time.Time
	GoalsFor      int
	GoalsAgainst  int
}

type UpdateMatchInput struct {
	ID           string
	Opponent     string
	Date         time.Time
	GoalsFor     int
	GoalsAgainst int
}

type MatchService struct {
	matchRepo       match.Repository
	competitionRepo competition.Repository
	teamRepo        team.Repository
	photoRepo       photo.Repository
	assets          AssetRemover
	clubName        string
	logger          *logging.Logger
	ids             id.Generator
	now             func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	competitionRepo competition.Repository,
	teamRepo team.Repository,
	photoRepo photo.Repository,
	assets AssetRemover,
	clubName string,
	logger *logging.Logger,
	ids id.Generator,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		matchRepo:       matchRepo,
		competitionRepo: competitionRepo,
		teamRepo:        teamRepo,
		photoRepo:       photoRepo,
		assets:          assets,
		clubName:        strings.TrimSpace(clubName),
		logger:          logger,
		ids:             ids,
		now:             time.Now,
	}
}

func (s *MatchService) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	filter.CompetitionID = strings.TrimSpace(filter.CompetitionID)
	filter.TeamID = strings.TrimSpace(filter.TeamID)

	items, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

func (s *MatchService) GetByID(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return item, nil
}

func (s *MatchService) Create(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	input.CompetitionID = strings.TrimSpace(input.CompetitionID)
	input.Opponent = strings.TrimSpace(input.Opponent)
	if input.CompetitionID == "" {
		return match.Match{}, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}
	if input.Opponent == "" {
		return match.Match{}, fmt.Errorf("%w: opponent is required", ErrInvalidInput)
	}
	if input.Date.IsZero() {
		return match.Match{}, fmt.Errorf("%w: match date is required", ErrInvalidInput)
	}
	if input.GoalsFor < 0 || input.GoalsAgainst < 0 {
		return match.Match{}, fmt.Errorf("%w: goal counts cannot be negative", ErrInvalidInput)
	}

	_, exists, err := s.competitionRepo.GetByID(ctx, input.CompetitionID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get competition by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: competition=%s", ErrNotFound, input.CompetitionID)
	}

	if s.clubName == "" {
		return match.Match{}, fmt.Errorf("%w: club team name is not configured", ErrInvalidInput)
	}
	club, err := s.teamRepo.Ensure(ctx, s.clubName)
	if err != nil {
		return match.Match{}, fmt.Errorf("ensure club team: %w", err)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	created, err := s.matchRepo.Create(ctx, match.Match{
		ID:            newID,
		CompetitionID: input.CompetitionID,
		TeamID:        club.ID,
		Opponent:      input.Opponent,
		Date:          input.Date.UTC(),
		GoalsFor:      input.GoalsFor,
		GoalsAgainst:  input.GoalsAgainst,
		Result:        match.DeriveResult(input.GoalsFor, input.GoalsAgainst),
		CreatedAt:     s.now().UTC(),
	})
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return created, nil
}

func (s *MatchService) Update(ctx context.Context, input UpdateMatchInput) (match.Match, error) {
	input.ID = strings.TrimSpace(input.ID)
	input.Opponent = strings.TrimSpace(input.Opponent)
	if input.Opponent == "" {
		return match.Match{}, fmt.Errorf("%w: opponent is required", ErrInvalidInput)
	}
	if input.Date.IsZero() {
		return match.Match{}, fmt.Errorf("%w: match date is required", ErrInvalidInput)
	}
	if input.GoalsFor < 0 || input.GoalsAgainst < 0 {
		return match.Match{}, fmt.Errorf("%w: goal counts cannot be negative", ErrInvalidInput)
	}

	existing, err := s.GetByID(ctx, input.ID)
	if err != nil {
		return match.Match{}, err
	}

	existing.Opponent = input.Opponent
	existing.Date = input.Date.UTC()
	existing.GoalsFor = input.GoalsFor
	existing.GoalsAgainst = input.GoalsAgainst
	existing.Result = match.DeriveResult(input.GoalsFor, input.GoalsAgainst)

	updated, err := s.matchRepo.Update(ctx, existing)
	if err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	return updated, nil
}

// Delete removes the match with all dependent rows, then removes the match
// photos' stored binaries best-effort. Asset failures are logged only.
func (s *MatchService) Delete(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	if _, err := s.GetByID(ctx, matchID); err != nil {
		return err
	}
	matchID = strings.TrimSpace(matchID)

	photos, err := s.photoRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return fmt.Errorf("list match photos before delete: %w", err)
	}

	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	s.cleanupAssets(ctx, photos)
	return nil
}

// DeleteAll removes every match, optionally scoped to one competition, and
// returns the number removed.
func (s *MatchService) DeleteAll(ctx context.Context, competitionID string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteAll")
	defer span.End()

	competitionID = strings.TrimSpace(competitionID)
	if competitionID != "" {
		_, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
		if err != nil {
			return 0, fmt.Errorf("get competition by id: %w", err)
		}
		if !exists {
			return 0, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionID)
		}
	}

	matches, err := s.matchRepo.List(ctx, match.Filter{CompetitionID: competitionID})
	if err != nil {
		return 0, fmt.Errorf("list matches before bulk delete: %w", err)
	}

	var orphaned []photo.Photo
	for _, m := range matches {
		photos, err := s.photoRepo.ListByMatch(ctx, m.ID)
		if err != nil {
			return 0, fmt.Errorf("list match photos before bulk delete: %w", err)
		}
		orphaned = append(orphaned, photos...)
	}

	deleted, err := s.matchRepo.DeleteAll(ctx, competitionID)
	if err != nil {
		return 0, fmt.Errorf("bulk delete matches: %w", err)
	}

	s.cleanupAssets(ctx, orphaned)
	return deleted, nil
}

func (s *MatchService) cleanupAssets(ctx context.Context, photos []photo.Photo) {
	if s.assets == nil {
		return
	}

	workers := pool.New().WithMaxGoroutines(assetCleanupParallelism)
	for _, p := range photos {
		if p.AssetID == "" {
			continue
		}
		p := p
		workers.Go(func() {
			if err := s.assets.Remove(ctx, p.AssetID); err != nil {
				s.logger.WarnContext(ctx, "asset cleanup failed",
					"photo_id", p.ID,
					"asset_id", p.AssetID,
					"error", err,
				)
			}
		})
	}
	workers.Wait()
}
