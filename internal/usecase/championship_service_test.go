package usecase

import (
	"errors"
	"testing"

	"github.com/lamberpool/matchday/internal/infrastructure/repository/memory"
	"github.com/lamberpool/matchday/internal/platform/id"
)

func newChampionshipService(store *memory.Store) *ChampionshipService {
	return NewChampionshipService(store.Championships(), id.NewSequence("chp"))
}

func TestChampionshipService_Create_DuplicateConflicts(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newChampionshipService(store)

	_, err := service.Create(t.Context(), SaveChampionshipInput{
		Year:        2023,
		SeasonLabel: "2022/2023",
		Division:    "Second Division",
		Title:       "League Champions",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict for duplicate championship, got %v", err)
	}
}

func TestChampionshipService_List_OrderedByYearThenSortOrder(t *testing.T) {
	store := memory.NewStore()
	service := newChampionshipService(store)

	inputs := []SaveChampionshipInput{
		{Year: 2022, SeasonLabel: "2021/2022", Division: "Second Division", Title: "Cup Winners", SortOrder: 1},
		{Year: 2023, SeasonLabel: "2022/2023", Division: "Second Division", Title: "League Champions", SortOrder: 1},
		{Year: 2023, SeasonLabel: "2022/2023", Division: "Coppa", Title: "Cup Winners", SortOrder: 2},
	}
	for _, input := range inputs {
		if _, err := service.Create(t.Context(), input); err != nil {
			t.Fatalf("create championship failed: %v", err)
		}
	}

	items, err := service.List(t.Context())
	if err != nil {
		t.Fatalf("list championships failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 championships, got %d", len(items))
	}
	if items[0].Year != 2023 || items[0].SortOrder != 2 {
		t.Fatalf("expected 2023 sort order 2 first, got year=%d order=%d", items[0].Year, items[0].SortOrder)
	}
	if items[2].Year != 2022 {
		t.Fatalf("expected 2022 last, got %d", items[2].Year)
	}
}

func TestChampionshipService_Update_KeepsCreatedAt(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	service := newChampionshipService(store)

	updated, err := service.Update(t.Context(), SaveChampionshipInput{
		ID:          "chp-2023-d2",
		Year:        2023,
		SeasonLabel: "2022/2023",
		Division:    "Second Division",
		Title:       "League and Cup Double",
		SortOrder:   1,
	})
	if err != nil {
		t.Fatalf("update championship failed: %v", err)
	}
	if updated.Title != "League and Cup Double" {
		t.Fatalf("unexpected title %q", updated.Title)
	}
	if updated.CreatedAt.IsZero() {
		t.Fatal("expected created_at preserved on update")
	}
}

func TestChampionshipService_Delete_NotFound(t *testing.T) {
	store := memory.NewStore()
	service := newChampionshipService(store)

	if err := service.Delete(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
