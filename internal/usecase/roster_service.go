package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/lamberpool/matchday/internal/domain/lineup"
	"github.com/lamberpool/matchday/internal/domain/player"
	"github.com/lamberpool/matchday/internal/domain/rating"
	"github.com/lamberpool/matchday/internal/domain/team"
	"github.com/lamberpool/matchday/internal/platform/id"
)

const (
	playerNumberMin = 1
	playerNumberMax = 99

	defaultStatsWorkers = 8
)

type CreatePlayerInput struct {
	Name   string
	Number int
	TeamID string
}

type UpdatePlayerInput struct {
	ID     string
	Name   string
	Number int
}

// PlayerStats aggregates a player's record across every lineup appearance.
type PlayerStats struct {
	Player        player.Player
	Appearances   int
	Goals         int
	AverageRating float64
	RatingsCount  int
}

type RosterService struct {
	playerRepo      player.Repository
	teamRepo        team.Repository
	lineupRepo      lineup.Repository
	ratingRepo      rating.Repository
	guestRatingRepo rating.GuestRepository
	clubName        string
	statsWorkers    int
	ids             id.Generator
	now             func() time.Time
}

func NewRosterService(
	playerRepo player.Repository,
	teamRepo team.Repository,
	lineupRepo lineup.Repository,
	ratingRepo rating.Repository,
	guestRatingRepo rating.GuestRepository,
	clubName string,
	statsWorkers int,
	ids id.Generator,
) *RosterService {
	if statsWorkers < 1 {
		statsWorkers = defaultStatsWorkers
	}
	return &RosterService{
		playerRepo:      playerRepo,
		teamRepo:        teamRepo,
		lineupRepo:      lineupRepo,
		ratingRepo:      ratingRepo,
		guestRatingRepo: guestRatingRepo,
		clubName:        strings.TrimSpace(clubName),
		statsWorkers:    statsWorkers,
		ids:             ids,
		now:             time.Now,
	}
}

func (s *RosterService) List(ctx context.Context, teamID string) ([]player.Player, error) {
	items, err := s.playerRepo.List(ctx, strings.TrimSpace(teamID))
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *RosterService) GetByID(ctx context.Context, playerID string) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return item, nil
}

func (s *RosterService) Create(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.TeamID = strings.TrimSpace(input.TeamID)
	if input.Name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if input.Number < playerNumberMin || input.Number > playerNumberMax {
		return player.Player{}, fmt.Errorf("%w: shirt number must be between %d and %d", ErrInvalidInput, playerNumberMin, playerNumberMax)
	}

	if input.TeamID == "" {
		if s.clubName == "" {
			return player.Player{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
		}
		club, err := s.teamRepo.Ensure(ctx, s.clubName)
		if err != nil {
			return player.Player{}, fmt.Errorf("ensure club team: %w", err)
		}
		input.TeamID = club.ID
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	created, err := s.playerRepo.Create(ctx, player.Player{
		ID:        newID,
		Name:      input.Name,
		Number:    input.Number,
		TeamID:    input.TeamID,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, player.ErrDuplicateNumber) {
			return player.Player{}, fmt.Errorf("%w: shirt number %d", ErrConflict, input.Number)
		}
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return created, nil
}

func (s *RosterService) Update(ctx context.Context, input UpdatePlayerInput) (player.Player, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if input.Number < playerNumberMin || input.Number > playerNumberMax {
		return player.Player{}, fmt.Errorf("%w: shirt number must be between %d and %d", ErrInvalidInput, playerNumberMin, playerNumberMax)
	}

	existing, err := s.GetByID(ctx, input.ID)
	if err != nil {
		return player.Player{}, err
	}

	existing.Name = input.Name
	existing.Number = input.Number

	updated, err := s.playerRepo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, player.ErrDuplicateNumber) {
			return player.Player{}, fmt.Errorf("%w: shirt number %d", ErrConflict, input.Number)
		}
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	return updated, nil
}

// Delete removes the player together with every lineup appearance and the
// ratings attached to those appearances.
func (s *RosterService) Delete(ctx context.Context, playerID string) error {
	if _, err := s.GetByID(ctx, playerID); err != nil {
		return err
	}

	if err := s.playerRepo.Delete(ctx, strings.TrimSpace(playerID)); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

// ListWithStats returns the roster with per-player aggregates, computing each
// player's numbers on a worker pool.
func (s *RosterService) ListWithStats(ctx context.Context, teamID string) ([]PlayerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListWithStats")
	defer span.End()

	players, err := s.List(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return []PlayerStats{}, nil
	}

	workerCount := s.statsWorkers
	if workerCount > len(players) {
		workerCount = len(players)
	}
	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create stats worker pool: %w", err)
	}
	defer workerPool.Release()

	out := make([]PlayerStats, len(players))
	errs := make([]error, len(players))

	var workers sync.WaitGroup
	for i, p := range players {
		i, p := i, p
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()
			out[i], errs[i] = s.playerStats(ctx, p)
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit stats task: %w", err)
		}
	}
	workers.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *RosterService) playerStats(ctx context.Context, p player.Player) (PlayerStats, error) {
	entries, err := s.lineupRepo.ListByPlayer(ctx, p.ID)
	if err != nil {
		return PlayerStats{}, fmt.Errorf("list player appearances: %w", err)
	}

	stats := PlayerStats{Player: p, Appearances: len(entries)}
	scoreSum := 0
	for _, entry := range entries {
		stats.Goals += entry.Goals

		ratings, err := s.ratingRepo.ListByLineup(ctx, entry.ID)
		if err != nil {
			return PlayerStats{}, fmt.Errorf("list ratings for appearance: %w", err)
		}
		guests, err := s.guestRatingRepo.ListByLineup(ctx, entry.ID)
		if err != nil {
			return PlayerStats{}, fmt.Errorf("list guest ratings for appearance: %w", err)
		}
		for _, r := range ratings {
			scoreSum += r.Score
		}
		for _, g := range guests {
			scoreSum += g.Score
		}
		stats.RatingsCount += len(ratings) + len(guests)
	}

	if stats.RatingsCount > 0 {
		stats.AverageRating = math.Round(float64(scoreSum)/float64(stats.RatingsCount)*100) / 100
	}
	return stats, nil
}
