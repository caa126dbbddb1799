package usecase

import (
	"errors"
	"testing"

	"github.com/lamberpool/matchday/internal/infrastructure/repository/memory"
	"github.com/lamberpool/matchday/internal/platform/id"
)

func newLineupService(store *memory.Store) *LineupService {
	return NewLineupService(
		store.Lineups(),
		store.Matches(),
		store.Players(),
		store.Ratings(),
		store.GuestRatings(),
		id.NewSequence("lnp"),
	)
}

func TestLineupService_Create_DuplicatePlayerConflicts(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newLineupService(store)

	input := CreateLineupEntryInput{
		MatchID:  "mtc-001",
		PlayerID: "ply-09",
		Position: "ST",
		Goals:    2,
	}

	if _, err := service.Create(t.Context(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := service.Create(t.Context(), input); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict for duplicate lineup entry, got %v", err)
	}
}

func TestLineupService_Create_UnknownPlayer(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newLineupService(store)

	_, err := service.Create(t.Context(), CreateLineupEntryInput{
		MatchID:  "mtc-001",
		PlayerID: "missing",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLineupService_ListByMatch_EnrichesWithRatings(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newLineupService(store)

	created, err := service.Create(t.Context(), CreateLineupEntryInput{
		MatchID:  "mtc-001",
		PlayerID: "ply-09",
		Position: "ST",
		Goals:    2,
	})
	if err != nil {
		t.Fatalf("create lineup entry failed: %v", err)
	}

	if _, err := store.Ratings().Upsert(t.Context(), ratingFixture("rtg-1", created.Entry.ID, "jdg-01", 8)); err != nil {
		t.Fatalf("create rating fixture failed: %v", err)
	}
	if _, err := store.Ratings().Upsert(t.Context(), ratingFixture("rtg-2", created.Entry.ID, "jdg-02", 6)); err != nil {
		t.Fatalf("create rating fixture failed: %v", err)
	}

	details, err := service.ListByMatch(t.Context(), "mtc-001")
	if err != nil {
		t.Fatalf("list match lineup failed: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 lineup entry, got %d", len(details))
	}

	detail := details[0]
	if detail.Player.Name != "Luca Ferraro" {
		t.Fatalf("expected enriched player, got %q", detail.Player.Name)
	}
	if detail.AverageRating != 7.00 {
		t.Fatalf("expected average 7.00, got %v", detail.AverageRating)
	}
	if detail.RatingsCount != 2 {
		t.Fatalf("expected 2 ratings counted, got %d", detail.RatingsCount)
	}
}

func TestLineupService_Update_KeepsMatchAndPlayer(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newLineupService(store)

	created, err := service.Create(t.Context(), CreateLineupEntryInput{
		MatchID:  "mtc-001",
		PlayerID: "ply-09",
		Position: "ST",
	})
	if err != nil {
		t.Fatalf("create lineup entry failed: %v", err)
	}

	updated, err := service.Update(t.Context(), UpdateLineupEntryInput{
		ID:       created.Entry.ID,
		Position: "CAM",
		Goals:    1,
		Cards:    "Y",
	})
	if err != nil {
		t.Fatalf("update lineup entry failed: %v", err)
	}

	if updated.Entry.MatchID != "mtc-001" || updated.Entry.PlayerID != "ply-09" {
		t.Fatalf("expected match and player unchanged, got %+v", updated.Entry)
	}
	if updated.Entry.Position != "CAM" || updated.Entry.Goals != 1 || updated.Entry.Cards != "Y" {
		t.Fatalf("unexpected updated entry: %+v", updated.Entry)
	}
}
