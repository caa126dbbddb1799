package memory

import (
	"context"
	"sort"

	"github.com/lamberpool/matchday/internal/domain/championship"
)

type ChampionshipRepository struct {
	store *Store
}

func (s *Store) Championships() *ChampionshipRepository {
	return &ChampionshipRepository{store: s}
}

func (r *ChampionshipRepository) List(_ context.Context) ([]championship.Championship, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]championship.Championship, 0, len(r.store.championships))
	for _, item := range r.store.championships {
		out = append(out, item)
	}
	sortChampionships(out)
	return out, nil
}

func (r *ChampionshipRepository) ListByYear(_ context.Context, year int) ([]championship.Championship, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]championship.Championship, 0)
	for _, item := range r.store.championships {
		if item.Year == year {
			out = append(out, item)
		}
	}
	sortChampionships(out)
	return out, nil
}

func (r *ChampionshipRepository) GetByID(_ context.Context, id string) (championship.Championship, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.championships[id]
	return item, ok, nil
}

func (r *ChampionshipRepository) Create(_ context.Context, c championship.Championship) (championship.Championship, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, item := range r.store.championships {
		if item.Year == c.Year && item.SeasonLabel == c.SeasonLabel && item.Division == c.Division {
			return championship.Championship{}, championship.ErrDuplicate
		}
	}

	r.store.championships[c.ID] = c
	return c, nil
}

func (r *ChampionshipRepository) Update(_ context.Context, c championship.Championship) (championship.Championship, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, item := range r.store.championships {
		if item.ID != c.ID && item.Year == c.Year && item.SeasonLabel == c.SeasonLabel && item.Division == c.Division {
			return championship.Championship{}, championship.ErrDuplicate
		}
	}

	r.store.championships[c.ID] = c
	return c, nil
}

func (r *ChampionshipRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.championships, id)
	return nil
}

func sortChampionships(items []championship.Championship) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Year != items[j].Year {
			return items[i].Year > items[j].Year
		}
		if items[i].SortOrder != items[j].SortOrder {
			return items[i].SortOrder > items[j].SortOrder
		}
		return items[i].ID < items[j].ID
	})
}
