package usecase

import (
	"errors"
	"testing"

	"github.com/lamberpool/matchday/internal/infrastructure/repository/memory"
	"github.com/lamberpool/matchday/internal/platform/id"
)

func newSeasonService(store *memory.Store) *SeasonService {
	return NewSeasonService(store.Seasons(), store.Tournaments(), id.NewSequence("ssn"))
}

func TestSeasonService_Create_DuplicateYearConflicts(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newSeasonService(store)

	_, err := service.Create(t.Context(), CreateSeasonInput{
		Year:         2025,
		TournamentID: memory.SeedTournamentID,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict for duplicate year, got %v", err)
	}
}

func TestSeasonService_Create_UnknownTournament(t *testing.T) {
	store := memory.NewStore()
	service := newSeasonService(store)

	_, err := service.Create(t.Context(), CreateSeasonInput{
		Year:         2025,
		TournamentID: "missing",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSeasonService_ListByTournament_NewestFirst(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newSeasonService(store)

	seasons, err := service.ListByTournament(t.Context(), memory.SeedTournamentID)
	if err != nil {
		t.Fatalf("list seasons failed: %v", err)
	}
	if len(seasons) != 2 {
		t.Fatalf("expected 2 seasons, got %d", len(seasons))
	}
	if seasons[0].Year != 2025 || seasons[1].Year != 2024 {
		t.Fatalf("expected years [2025 2024], got [%d %d]", seasons[0].Year, seasons[1].Year)
	}
}

func TestSeasonService_Delete_CleansChildrenWithoutUpwardCascade(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newSeasonService(store)

	if err := service.Delete(t.Context(), memory.SeedSeasonID); err != nil {
		t.Fatalf("delete season failed: %v", err)
	}

	if _, exists, _ := store.Competitions().GetByID(t.Context(), memory.SeedCompetitionID); exists {
		t.Fatal("expected competitions to be deleted with the season")
	}
	if _, exists, _ := store.Matches().GetByID(t.Context(), "mtc-001"); exists {
		t.Fatal("expected matches to be deleted with the season")
	}
	if _, exists, _ := store.Tournaments().GetByID(t.Context(), memory.SeedTournamentID); !exists {
		t.Fatal("expected tournament to survive season deletion")
	}
}

func TestSeasonService_Active(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newSeasonService(store)

	active, err := service.Active(t.Context(), memory.SeedTournamentID)
	if err != nil {
		t.Fatalf("get active season failed: %v", err)
	}
	if active.ID != memory.SeedSeasonID {
		t.Fatalf("expected active season %s, got %s", memory.SeedSeasonID, active.ID)
	}
}
