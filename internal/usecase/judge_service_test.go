package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/lamberpool/matchday/internal/infrastructure/repository/memory"
	"github.com/lamberpool/matchday/internal/platform/id"
)

func newJudgeService(store *memory.Store) *JudgeService {
	return NewJudgeService(store.Judges(), store.GuestJudges(), store.Matches(), id.NewSequence("jdg"))
}

func TestJudgeService_Create_DuplicateNameConflicts(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newJudgeService(store)

	if _, err := service.Create(t.Context(), "Franco"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict for duplicate judge name, got %v", err)
	}
}

func TestJudgeService_CreateGuest_UnknownMatch(t *testing.T) {
	store := memory.NewStore()
	service := newJudgeService(store)

	if _, err := service.CreateGuest(t.Context(), "missing", "Zio Piero"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestJudgeService_DeleteGuest_RemovesGuestRatings(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newJudgeService(store)

	entry, err := store.Lineups().Create(t.Context(), lineupFixture("lnp-1", "mtc-001", "ply-09"))
	if err != nil {
		t.Fatalf("create lineup fixture failed: %v", err)
	}

	guest, err := service.CreateGuest(t.Context(), "mtc-001", "Zio Piero")
	if err != nil {
		t.Fatalf("create guest judge failed: %v", err)
	}

	ratings := newRatingService(store)
	if _, err := ratings.UpsertGuest(t.Context(), UpsertGuestRatingInput{
		LineupID:     entry.ID,
		GuestJudgeID: guest.ID,
		Score:        6,
	}); err != nil {
		t.Fatalf("upsert guest rating failed: %v", err)
	}

	if err := service.DeleteGuest(t.Context(), guest.ID); err != nil {
		t.Fatalf("delete guest judge failed: %v", err)
	}

	if guests, _ := store.GuestRatings().ListByLineup(t.Context(), entry.ID); len(guests) != 0 {
		t.Fatalf("expected guest ratings to be deleted, got %d", len(guests))
	}
}

func TestJudgeService_ListGuestsByMatch_OldestFirst(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newJudgeService(store)

	if _, err := store.GuestJudges().Create(t.Context(), guestJudgeFixture("gst-1", "mtc-001", "Zio Piero")); err != nil {
		t.Fatalf("create guest judge fixture failed: %v", err)
	}
	later := guestJudgeFixture("gst-2", "mtc-001", "Nonna Rosa")
	later.CreatedAt = later.CreatedAt.Add(5 * time.Minute)
	if _, err := store.GuestJudges().Create(t.Context(), later); err != nil {
		t.Fatalf("create guest judge fixture failed: %v", err)
	}

	guests, err := service.ListGuestsByMatch(t.Context(), "mtc-001")
	if err != nil {
		t.Fatalf("list guest judges failed: %v", err)
	}
	if len(guests) != 2 {
		t.Fatalf("expected 2 guest judges, got %d", len(guests))
	}
	if guests[0].ID != "gst-1" {
		t.Fatalf("expected oldest guest judge first, got %s", guests[0].ID)
	}
}
