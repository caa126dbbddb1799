package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/lamberpool/matchday/internal/infrastructure/repository/memory"
	"github.com/lamberpool/matchday/internal/platform/id"
)

func newCompetitionService(store *memory.Store) *CompetitionService {
	return NewCompetitionService(store.Competitions(), store.Seasons(), id.NewSequence("cmp"))
}

func TestCompetitionService_Create_DuplicateNameConflicts(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newCompetitionService(store)

	_, err := service.Create(t.Context(), CreateCompetitionInput{
		Name:     "Regular Stage",
		SeasonID: memory.SeedSeasonID,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict for duplicate competition name, got %v", err)
	}
}

func TestCompetitionService_Delete_LastCompetitionCascades(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newCompetitionService(store)

	// ssn-2024 holds a single competition; deleting it must remove the
	// season but keep the tournament, which still owns ssn-2025.
	if err := service.Delete(t.Context(), "cmp-2024-regular"); err != nil {
		t.Fatalf("delete competition failed: %v", err)
	}

	if _, exists, _ := store.Seasons().GetByID(t.Context(), "ssn-2024"); exists {
		t.Fatal("expected emptied season to be deleted")
	}
	if _, exists, _ := store.Tournaments().GetByID(t.Context(), memory.SeedTournamentID); !exists {
		t.Fatal("expected tournament to survive while another season remains")
	}

	// Deleting the last competition of the last season takes the
	// tournament with it. The team is never part of the cascade.
	if err := service.Delete(t.Context(), memory.SeedCompetitionID); err != nil {
		t.Fatalf("delete competition failed: %v", err)
	}

	if _, exists, _ := store.Seasons().GetByID(t.Context(), memory.SeedSeasonID); exists {
		t.Fatal("expected emptied season to be deleted")
	}
	if _, exists, _ := store.Tournaments().GetByID(t.Context(), memory.SeedTournamentID); exists {
		t.Fatal("expected emptied tournament to be deleted")
	}
	if _, exists, _ := store.Teams().GetByID(t.Context(), memory.SeedTeamID); !exists {
		t.Fatal("expected team to survive the cascade")
	}
}

func TestCompetitionService_Delete_SiblingKeepsSeason(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newCompetitionService(store)

	if _, err := service.Create(t.Context(), CreateCompetitionInput{
		Name:     "Playoffs",
		SeasonID: memory.SeedSeasonID,
	}); err != nil {
		t.Fatalf("create sibling competition failed: %v", err)
	}

	if err := service.Delete(t.Context(), memory.SeedCompetitionID); err != nil {
		t.Fatalf("delete competition failed: %v", err)
	}

	if _, exists, _ := store.Seasons().GetByID(t.Context(), memory.SeedSeasonID); !exists {
		t.Fatal("expected season with a remaining competition to survive")
	}
}

func TestCompetitionService_Delete_CleansMatchesAndChildren(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newCompetitionService(store)

	entry, err := store.Lineups().Create(t.Context(), lineupFixture("lnp-1", "mtc-001", "ply-09"))
	if err != nil {
		t.Fatalf("create lineup fixture failed: %v", err)
	}
	if _, err := store.Ratings().Upsert(t.Context(), ratingFixture("rtg-1", entry.ID, "jdg-01", 8)); err != nil {
		t.Fatalf("create rating fixture failed: %v", err)
	}

	if err := service.Delete(t.Context(), memory.SeedCompetitionID); err != nil {
		t.Fatalf("delete competition failed: %v", err)
	}

	if _, exists, _ := store.Matches().GetByID(t.Context(), "mtc-001"); exists {
		t.Fatal("expected matches to be deleted with the competition")
	}
	if _, exists, _ := store.Lineups().GetByID(t.Context(), entry.ID); exists {
		t.Fatal("expected lineup entries to be deleted with the match")
	}
	if ratings, _ := store.Ratings().ListByLineup(t.Context(), entry.ID); len(ratings) != 0 {
		t.Fatalf("expected ratings to be deleted with the lineup entry, got %d", len(ratings))
	}
}

func TestCompetitionService_Delete_NotFound(t *testing.T) {
	store := memory.NewStore()
	service := newCompetitionService(store)

	if err := service.Delete(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCompetitionService_JerseyLifecycle(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newCompetitionService(store)

	updated, err := service.SetJersey(t.Context(), memory.SeedCompetitionID, "https://cdn.example/jersey.png")
	if err != nil {
		t.Fatalf("set jersey failed: %v", err)
	}
	if updated.JerseyURL == nil || *updated.JerseyURL != "https://cdn.example/jersey.png" {
		t.Fatalf("unexpected jersey url: %v", updated.JerseyURL)
	}

	cleared, err := service.ClearJersey(t.Context(), memory.SeedCompetitionID)
	if err != nil {
		t.Fatalf("clear jersey failed: %v", err)
	}
	if cleared.JerseyURL != nil {
		t.Fatalf("expected jersey url cleared, got %v", *cleared.JerseyURL)
	}

	if _, err := service.SetJersey(t.Context(), memory.SeedCompetitionID, "not-a-url"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for relative url, got %v", err)
	}
}

func TestCompetitionService_Delete_ConcurrentSiblingsRemoveSeason(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newCompetitionService(store)

	sibling, err := service.Create(t.Context(), CreateCompetitionInput{
		Name:     "Playoffs",
		SeasonID: memory.SeedSeasonID,
	})
	if err != nil {
		t.Fatalf("create sibling competition failed: %v", err)
	}

	// Delete the season's only two competitions at the same time. Neither
	// delete may conclude "season still non-empty" off a stale sibling count;
	// the emptied season must not survive.
	var wg sync.WaitGroup
	for _, competitionID := range []string{memory.SeedCompetitionID, sibling.ID} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.Competitions().DeleteCascade(context.Background(), competitionID); err != nil {
				t.Errorf("delete competition %s failed: %v", competitionID, err)
			}
		}()
	}
	wg.Wait()

	if list, _ := service.ListBySeason(t.Context(), memory.SeedSeasonID); len(list) != 0 {
		t.Fatalf("expected no competitions left, got %d", len(list))
	}
	if _, exists, _ := store.Seasons().GetByID(t.Context(), memory.SeedSeasonID); exists {
		t.Fatal("expected emptied season to be deleted")
	}
	if _, exists, _ := store.Tournaments().GetByID(t.Context(), memory.SeedTournamentID); !exists {
		t.Fatal("expected tournament to survive while another season remains")
	}
}

func TestCompetitionService_SetJersey_DeletedCompetition(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newCompetitionService(store)

	// A competition removed between the existence check and the update must
	// surface as not found, not as an empty competition.
	if _, exists, err := store.Competitions().SetJerseyURL(t.Context(), "missing", nil); err != nil || exists {
		t.Fatalf("expected exists=false for unknown competition, got exists=%t err=%v", exists, err)
	}

	if _, err := service.SetJersey(t.Context(), "missing", "https://cdn.example/jersey.png"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for set jersey, got %v", err)
	}
	if _, err := service.ClearFinalTablePhoto(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for clear final table photo, got %v", err)
	}
}
