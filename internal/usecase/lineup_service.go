package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lamberpool/matchday/internal/domain/lineup"
	"github.com/lamberpool/matchday/internal/domain/match"
	"github.com/lamberpool/matchday/internal/domain/player"
	"github.com/lamberpool/matchday/internal/domain/rating"
	"github.com/lamberpool/matchday/internal/platform/id"
)

type CreateLineupEntryInput struct {
	MatchID  string
	PlayerID string
	Position string
	Goals    int
	Cards    string
}

type UpdateLineupEntryInput struct {
	ID       string
	Position string
	Goals    int
	Cards    string
}

// LineupEntryDetail is one lineup entry enriched with the player and the
// pooled rating aggregate.
type LineupEntryDetail struct {
	Entry         lineup.Entry
	Player        player.Player
	AverageRating float64
	RatingsCount  int
}

type LineupService struct {
	lineupRepo      lineup.Repository
	matchRepo       match.Repository
	playerRepo      player.Repository
	ratingRepo      rating.Repository
	guestRatingRepo rating.GuestRepository
	ids             id.Generator
	now             func() time.Time
}

func NewLineupService(
	lineupRepo lineup.Repository,
	matchRepo match.Repository,
	playerRepo player.Repository,
	ratingRepo rating.Repository,
	guestRatingRepo rating.GuestRepository,
	ids id.Generator,
) *LineupService {
	return &LineupService{
		lineupRepo:      lineupRepo,
		matchRepo:       matchRepo,
		playerRepo:      playerRepo,
		ratingRepo:      ratingRepo,
		guestRatingRepo: guestRatingRepo,
		ids:             ids,
		now:             time.Now,
	}
}

// ListByMatch returns the match lineup with players and rating aggregates.
func (s *LineupService) ListByMatch(ctx context.Context, matchID string) ([]LineupEntryDetail, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	if err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}

	entries, err := s.lineupRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list match lineup: %w", err)
	}

	out := make([]LineupEntryDetail, 0, len(entries))
	for _, entry := range entries {
		detail, err := s.enrich(ctx, entry)
		if err != nil {
			return nil, err
		}
		out = append(out, detail)
	}
	return out, nil
}

func (s *LineupService) GetByID(ctx context.Context, entryID string) (LineupEntryDetail, error) {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return LineupEntryDetail{}, fmt.Errorf("%w: lineup entry id is required", ErrInvalidInput)
	}

	entry, exists, err := s.lineupRepo.GetByID(ctx, entryID)
	if err != nil {
		return LineupEntryDetail{}, fmt.Errorf("get lineup entry by id: %w", err)
	}
	if !exists {
		return LineupEntryDetail{}, fmt.Errorf("%w: lineup entry=%s", ErrNotFound, entryID)
	}
	return s.enrich(ctx, entry)
}

func (s *LineupService) Create(ctx context.Context, input CreateLineupEntryInput) (LineupEntryDetail, error) {
	input.MatchID = strings.TrimSpace(input.MatchID)
	input.PlayerID = strings.TrimSpace(input.PlayerID)
	input.Position = strings.TrimSpace(input.Position)
	input.Cards = strings.TrimSpace(input.Cards)
	if input.MatchID == "" {
		return LineupEntryDetail{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if input.PlayerID == "" {
		return LineupEntryDetail{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if input.Goals < 0 {
		return LineupEntryDetail{}, fmt.Errorf("%w: goals cannot be negative", ErrInvalidInput)
	}

	if err := s.requireMatch(ctx, input.MatchID); err != nil {
		return LineupEntryDetail{}, err
	}
	if _, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID); err != nil {
		return LineupEntryDetail{}, fmt.Errorf("get player by id: %w", err)
	} else if !exists {
		return LineupEntryDetail{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return LineupEntryDetail{}, fmt.Errorf("generate lineup entry id: %w", err)
	}

	created, err := s.lineupRepo.Create(ctx, lineup.Entry{
		ID:        newID,
		MatchID:   input.MatchID,
		PlayerID:  input.PlayerID,
		Position:  input.Position,
		Goals:     input.Goals,
		Cards:     input.Cards,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, lineup.ErrDuplicateEntry) {
			return LineupEntryDetail{}, fmt.Errorf("%w: player already in lineup", ErrConflict)
		}
		return LineupEntryDetail{}, fmt.Errorf("create lineup entry: %w", err)
	}

	return s.enrich(ctx, created)
}

func (s *LineupService) Update(ctx context.Context, input UpdateLineupEntryInput) (LineupEntryDetail, error) {
	input.ID = strings.TrimSpace(input.ID)
	input.Position = strings.TrimSpace(input.Position)
	input.Cards = strings.TrimSpace(input.Cards)
	if input.ID == "" {
		return LineupEntryDetail{}, fmt.Errorf("%w: lineup entry id is required", ErrInvalidInput)
	}
	if input.Goals < 0 {
		return LineupEntryDetail{}, fmt.Errorf("%w: goals cannot be negative", ErrInvalidInput)
	}

	existing, exists, err := s.lineupRepo.GetByID(ctx, input.ID)
	if err != nil {
		return LineupEntryDetail{}, fmt.Errorf("get lineup entry by id: %w", err)
	}
	if !exists {
		return LineupEntryDetail{}, fmt.Errorf("%w: lineup entry=%s", ErrNotFound, input.ID)
	}

	existing.Position = input.Position
	existing.Goals = input.Goals
	existing.Cards = input.Cards

	updated, err := s.lineupRepo.Update(ctx, existing)
	if err != nil {
		return LineupEntryDetail{}, fmt.Errorf("update lineup entry: %w", err)
	}
	return s.enrich(ctx, updated)
}

func (s *LineupService) enrich(ctx context.Context, entry lineup.Entry) (LineupEntryDetail, error) {
	p, exists, err := s.playerRepo.GetByID(ctx, entry.PlayerID)
	if err != nil {
		return LineupEntryDetail{}, fmt.Errorf("get lineup player: %w", err)
	}
	if !exists {
		// Player rows can disappear between listing and enrichment.
		p = player.Player{ID: entry.PlayerID}
	}

	ratings, err := s.ratingRepo.ListByLineup(ctx, entry.ID)
	if err != nil {
		return LineupEntryDetail{}, fmt.Errorf("list lineup ratings: %w", err)
	}
	guests, err := s.guestRatingRepo.ListByLineup(ctx, entry.ID)
	if err != nil {
		return LineupEntryDetail{}, fmt.Errorf("list lineup guest ratings: %w", err)
	}

	return LineupEntryDetail{
		Entry:         entry,
		Player:        p,
		AverageRating: rating.Average(ratings, guests),
		RatingsCount:  len(ratings) + len(guests),
	}, nil
}

func (s *LineupService) requireMatch(ctx context.Context, matchID string) error {
	_, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return nil
}
