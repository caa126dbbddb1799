package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lamberpool/matchday/internal/domain/judge"
	"github.com/lamberpool/matchday/internal/domain/lineup"
	"github.com/lamberpool/matchday/internal/domain/rating"
	"github.com/lamberpool/matchday/internal/platform/id"
)

type UpsertRatingInput struct {
	LineupID string
	JudgeID  string
	Score    int
}

type UpsertGuestRatingInput struct {
	LineupID     string
	GuestJudgeID string
	Score        int
}

// LineupRatings is everything rated about one lineup entry.
type LineupRatings struct {
	Ratings       []rating.Rating
	GuestRatings  []rating.GuestRating
	AverageRating float64
}

type RatingService struct {
	ratingRepo      rating.Repository
	guestRatingRepo rating.GuestRepository
	lineupRepo      lineup.Repository
	judgeRepo       judge.Repository
	guestJudgeRepo  judge.GuestRepository
	ids             id.Generator
	now             func() time.Time
}

func NewRatingService(
	ratingRepo rating.Repository,
	guestRatingRepo rating.GuestRepository,
	lineupRepo lineup.Repository,
	judgeRepo judge.Repository,
	guestJudgeRepo judge.GuestRepository,
	ids id.Generator,
) *RatingService {
	return &RatingService{
		ratingRepo:      ratingRepo,
		guestRatingRepo: guestRatingRepo,
		lineupRepo:      lineupRepo,
		judgeRepo:       judgeRepo,
		guestJudgeRepo:  guestJudgeRepo,
		ids:             ids,
		now:             time.Now,
	}
}

// ListByLineup returns both rating pools and their pooled mean.
func (s *RatingService) ListByLineup(ctx context.Context, lineupID string) (LineupRatings, error) {
	lineupID = strings.TrimSpace(lineupID)
	if lineupID == "" {
		return LineupRatings{}, fmt.Errorf("%w: lineup entry id is required", ErrInvalidInput)
	}

	if err := s.requireLineup(ctx, lineupID); err != nil {
		return LineupRatings{}, err
	}

	ratings, err := s.ratingRepo.ListByLineup(ctx, lineupID)
	if err != nil {
		return LineupRatings{}, fmt.Errorf("list ratings: %w", err)
	}
	guests, err := s.guestRatingRepo.ListByLineup(ctx, lineupID)
	if err != nil {
		return LineupRatings{}, fmt.Errorf("list guest ratings: %w", err)
	}

	return LineupRatings{
		Ratings:       ratings,
		GuestRatings:  guests,
		AverageRating: rating.Average(ratings, guests),
	}, nil
}

func (s *RatingService) Upsert(ctx context.Context, input UpsertRatingInput) (rating.Rating, error) {
	input.LineupID = strings.TrimSpace(input.LineupID)
	input.JudgeID = strings.TrimSpace(input.JudgeID)
	if input.LineupID == "" {
		return rating.Rating{}, fmt.Errorf("%w: lineup entry id is required", ErrInvalidInput)
	}
	if input.JudgeID == "" {
		return rating.Rating{}, fmt.Errorf("%w: judge id is required", ErrInvalidInput)
	}
	if !rating.ValidScore(input.Score) {
		return rating.Rating{}, fmt.Errorf("%w: score must be between %d and %d", ErrInvalidInput, rating.MinScore, rating.MaxScore)
	}

	if err := s.requireLineup(ctx, input.LineupID); err != nil {
		return rating.Rating{}, err
	}
	if _, exists, err := s.judgeRepo.GetByID(ctx, input.JudgeID); err != nil {
		return rating.Rating{}, fmt.Errorf("get judge by id: %w", err)
	} else if !exists {
		return rating.Rating{}, fmt.Errorf("%w: judge=%s", ErrNotFound, input.JudgeID)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return rating.Rating{}, fmt.Errorf("generate rating id: %w", err)
	}

	item, err := s.ratingRepo.Upsert(ctx, rating.Rating{
		ID:        newID,
		LineupID:  input.LineupID,
		JudgeID:   input.JudgeID,
		Score:     input.Score,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return rating.Rating{}, fmt.Errorf("upsert rating: %w", err)
	}
	return item, nil
}

func (s *RatingService) DeleteAll(ctx context.Context, lineupID string) (int, error) {
	lineupID = strings.TrimSpace(lineupID)
	if lineupID != "" {
		if err := s.requireLineup(ctx, lineupID); err != nil {
			return 0, err
		}
	}

	deleted, err := s.ratingRepo.DeleteAll(ctx, lineupID)
	if err != nil {
		return 0, fmt.Errorf("delete ratings: %w", err)
	}
	return deleted, nil
}

func (s *RatingService) UpsertGuest(ctx context.Context, input UpsertGuestRatingInput) (rating.GuestRating, error) {
	input.LineupID = strings.TrimSpace(input.LineupID)
	input.GuestJudgeID = strings.TrimSpace(input.GuestJudgeID)
	if input.LineupID == "" {
		return rating.GuestRating{}, fmt.Errorf("%w: lineup entry id is required", ErrInvalidInput)
	}
	if input.GuestJudgeID == "" {
		return rating.GuestRating{}, fmt.Errorf("%w: guest judge id is required", ErrInvalidInput)
	}
	if !rating.ValidScore(input.Score) {
		return rating.GuestRating{}, fmt.Errorf("%w: score must be between %d and %d", ErrInvalidInput, rating.MinScore, rating.MaxScore)
	}

	if err := s.requireLineup(ctx, input.LineupID); err != nil {
		return rating.GuestRating{}, err
	}
	if _, exists, err := s.guestJudgeRepo.GetByID(ctx, input.GuestJudgeID); err != nil {
		return rating.GuestRating{}, fmt.Errorf("get guest judge by id: %w", err)
	} else if !exists {
		return rating.GuestRating{}, fmt.Errorf("%w: guest judge=%s", ErrNotFound, input.GuestJudgeID)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return rating.GuestRating{}, fmt.Errorf("generate guest rating id: %w", err)
	}

	item, err := s.guestRatingRepo.Upsert(ctx, rating.GuestRating{
		ID:           newID,
		LineupID:     input.LineupID,
		GuestJudgeID: input.GuestJudgeID,
		Score:        input.Score,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return rating.GuestRating{}, fmt.Errorf("upsert guest rating: %w", err)
	}
	return item, nil
}

func (s *RatingService) DeleteAllGuest(ctx context.Context, lineupID string) (int, error) {
	lineupID = strings.TrimSpace(lineupID)
	if lineupID != "" {
		if err := s.requireLineup(ctx, lineupID); err != nil {
			return 0, err
		}
	}

	deleted, err := s.guestRatingRepo.DeleteAll(ctx, lineupID)
	if err != nil {
		return 0, fmt.Errorf("delete guest ratings: %w", err)
	}
	return deleted, nil
}

func (s *RatingService) requireLineup(ctx context.Context, lineupID string) error {
	_, exists, err := s.lineupRepo.GetByID(ctx, lineupID)
	if err != nil {
		return fmt.Errorf("get lineup entry by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: lineup entry=%s", ErrNotFound, lineupID)
	}
	return nil
}
