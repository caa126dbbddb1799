package usecase

import (
	"errors"
	"testing"

	"github.com/lamberpool/matchday/internal/infrastructure/repository/memory"
	"github.com/lamberpool/matchday/internal/platform/id"
)

func newRatingService(store *memory.Store) *RatingService {
	return NewRatingService(
		store.Ratings(),
		store.GuestRatings(),
		store.Lineups(),
		store.Judges(),
		store.GuestJudges(),
		id.NewSequence("rtg"),
	)
}

func seedLineupEntry(t *testing.T, store *memory.Store) string {
	t.Helper()
	entry, err := store.Lineups().Create(t.Context(), lineupFixture("lnp-1", "mtc-001", "ply-09"))
	if err != nil {
		t.Fatalf("create lineup fixture failed: %v", err)
	}
	return entry.ID
}

func TestRatingService_Upsert_RejectsOutOfRangeScores(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	lineupID := seedLineupEntry(t, store)
	service := newRatingService(store)

	for _, score := range []int{0, 11, -3} {
		_, err := service.Upsert(t.Context(), UpsertRatingInput{
			LineupID: lineupID,
			JudgeID:  "jdg-01",
			Score:    score,
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected invalid input for score %d, got %v", score, err)
		}
	}
}

func TestRatingService_Upsert_ReplacesExistingScore(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	lineupID := seedLineupEntry(t, store)
	service := newRatingService(store)

	if _, err := service.Upsert(t.Context(), UpsertRatingInput{LineupID: lineupID, JudgeID: "jdg-01", Score: 4}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if _, err := service.Upsert(t.Context(), UpsertRatingInput{LineupID: lineupID, JudgeID: "jdg-01", Score: 9}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	result, err := service.ListByLineup(t.Context(), lineupID)
	if err != nil {
		t.Fatalf("list ratings failed: %v", err)
	}
	if len(result.Ratings) != 1 {
		t.Fatalf("expected a single rating per judge, got %d", len(result.Ratings))
	}
	if result.Ratings[0].Score != 9 {
		t.Fatalf("expected replaced score 9, got %d", result.Ratings[0].Score)
	}
}

func TestRatingService_ListByLineup_PoolsGuestScores(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	lineupID := seedLineupEntry(t, store)
	service := newRatingService(store)

	guest, err := store.GuestJudges().Create(t.Context(), guestJudgeFixture("gst-1", "mtc-001", "Zio Piero"))
	if err != nil {
		t.Fatalf("create guest judge fixture failed: %v", err)
	}

	if _, err := service.Upsert(t.Context(), UpsertRatingInput{LineupID: lineupID, JudgeID: "jdg-01", Score: 8}); err != nil {
		t.Fatalf("upsert rating failed: %v", err)
	}
	if _, err := service.UpsertGuest(t.Context(), UpsertGuestRatingInput{LineupID: lineupID, GuestJudgeID: guest.ID, Score: 6}); err != nil {
		t.Fatalf("upsert guest rating failed: %v", err)
	}

	result, err := service.ListByLineup(t.Context(), lineupID)
	if err != nil {
		t.Fatalf("list ratings failed: %v", err)
	}
	if result.AverageRating != 7.00 {
		t.Fatalf("expected pooled mean 7.00, got %v", result.AverageRating)
	}
}

func TestRatingService_DeleteAll_ReturnsCount(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	lineupID := seedLineupEntry(t, store)
	service := newRatingService(store)

	if _, err := service.Upsert(t.Context(), UpsertRatingInput{LineupID: lineupID, JudgeID: "jdg-01", Score: 8}); err != nil {
		t.Fatalf("upsert rating failed: %v", err)
	}
	if _, err := service.Upsert(t.Context(), UpsertRatingInput{LineupID: lineupID, JudgeID: "jdg-02", Score: 7}); err != nil {
		t.Fatalf("upsert rating failed: %v", err)
	}

	deleted, err := service.DeleteAll(t.Context(), lineupID)
	if err != nil {
		t.Fatalf("delete all ratings failed: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deleted ratings, got %d", deleted)
	}
}

func TestRatingService_Upsert_UnknownLineup(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newRatingService(store)

	_, err := service.Upsert(t.Context(), UpsertRatingInput{LineupID: "missing", JudgeID: "jdg-01", Score: 5})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
