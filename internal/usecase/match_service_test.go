package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/lamberpool/matchday/internal/domain/match"
	"github.com/lamberpool/matchday/internal/domain/photo"
	"github.com/lamberpool/matchday/internal/infrastructure/repository/memory"
	"github.com/lamberpool/matchday/internal/platform/id"
	"github.com/lamberpool/matchday/internal/platform/logging"
)

func newMatchService(store *memory.Store, assets AssetRemover) *MatchService {
	return NewMatchService(
		store.Matches(),
		store.Competitions(),
		store.Teams(),
		store.Photos(),
		assets,
		"Lamberpool FC",
		logging.NewNop(),
		id.NewSequence("mtc"),
	)
}

func TestMatchService_Create_DerivesResult(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newMatchService(store, nil)

	created, err := service.Create(t.Context(), CreateMatchInput{
		CompetitionID: memory.SeedCompetitionID,
		Opponent:      "Harbour Athletic",
		Date:          time.Date(2025, 4, 6, 10, 0, 0, 0, time.UTC),
		GoalsFor:      1,
		GoalsAgainst:  4,
	})
	if err != nil {
		t.Fatalf("create match failed: %v", err)
	}

	if created.Result != match.ResultLoss {
		t.Fatalf("expected derived loss, got %s", created.Result)
	}
	if created.TeamID != memory.SeedTeamID {
		t.Fatalf("expected club team id, got %s", created.TeamID)
	}
}

func TestMatchService_Create_UnknownCompetition(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newMatchService(store, nil)

	_, err := service.Create(t.Context(), CreateMatchInput{
		CompetitionID: "missing",
		Opponent:      "Harbour Athletic",
		Date:          time.Date(2025, 4, 6, 10, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMatchService_Update_RecomputesResult(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newMatchService(store, nil)

	// mtc-001 is seeded as a 3-1 win.
	updated, err := service.Update(t.Context(), UpdateMatchInput{
		ID:           "mtc-001",
		Opponent:     "Red Star Garage",
		Date:         time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC),
		GoalsFor:     1,
		GoalsAgainst: 1,
	})
	if err != nil {
		t.Fatalf("update match failed: %v", err)
	}

	if updated.Result != match.ResultDraw {
		t.Fatalf("expected result recomputed to draw, got %s", updated.Result)
	}
}

func TestMatchService_Delete_CleansChildrenAndAssets(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	assets := &recordingAssetRemover{}
	service := newMatchService(store, assets)

	entry, err := store.Lineups().Create(t.Context(), lineupFixture("lnp-1", "mtc-001", "ply-09"))
	if err != nil {
		t.Fatalf("create lineup fixture failed: %v", err)
	}
	if _, err := store.Ratings().Upsert(t.Context(), ratingFixture("rtg-1", entry.ID, "jdg-01", 8)); err != nil {
		t.Fatalf("create rating fixture failed: %v", err)
	}
	if _, err := store.Photos().Create(t.Context(), photo.Photo{
		ID:      "pht-1",
		MatchID: "mtc-001",
		URL:     "https://cdn.example/p1.jpg",
		AssetID: "asset-1",
	}); err != nil {
		t.Fatalf("create photo fixture failed: %v", err)
	}

	if err := service.Delete(t.Context(), "mtc-001"); err != nil {
		t.Fatalf("delete match failed: %v", err)
	}

	if _, exists, _ := store.Matches().GetByID(t.Context(), "mtc-001"); exists {
		t.Fatal("expected match to be deleted")
	}
	if _, exists, _ := store.Lineups().GetByID(t.Context(), entry.ID); exists {
		t.Fatal("expected lineup entry to be deleted")
	}
	if photos, _ := store.Photos().ListByMatch(t.Context(), "mtc-001"); len(photos) != 0 {
		t.Fatalf("expected photos to be deleted, got %d", len(photos))
	}
	if got := assets.snapshot(); len(got) != 1 || got[0] != "asset-1" {
		t.Fatalf("expected asset-1 removal, got %v", got)
	}

	// Deleting a match never cascades upward.
	if _, exists, _ := store.Competitions().GetByID(t.Context(), memory.SeedCompetitionID); !exists {
		t.Fatal("expected competition to survive match deletion")
	}
}

func TestMatchService_Delete_AssetFailureIsSwallowed(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	assets := &recordingAssetRemover{err: errors.New("asset store down")}
	service := newMatchService(store, assets)

	if _, err := store.Photos().Create(t.Context(), photo.Photo{
		ID:      "pht-1",
		MatchID: "mtc-001",
		URL:     "https://cdn.example/p1.jpg",
		AssetID: "asset-1",
	}); err != nil {
		t.Fatalf("create photo fixture failed: %v", err)
	}

	if err := service.Delete(t.Context(), "mtc-001"); err != nil {
		t.Fatalf("expected asset failure to be swallowed, got %v", err)
	}
}

func TestMatchService_DeleteAll_ScopedToCompetition(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newMatchService(store, nil)

	deleted, err := service.DeleteAll(t.Context(), memory.SeedCompetitionID)
	if err != nil {
		t.Fatalf("bulk delete failed: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deleted matches, got %d", deleted)
	}

	remaining, err := service.List(t.Context(), match.Filter{})
	if err != nil {
		t.Fatalf("list matches failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected no matches left, got %d", len(remaining))
	}
}
