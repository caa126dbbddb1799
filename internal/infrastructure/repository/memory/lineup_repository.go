package memory

import (
	"context"
	"sort"

	"github.com/lamberpool/matchday/internal/domain/lineup"
)

type LineupRepository struct {
	store *Store
}

func (s *Store) Lineups() *LineupRepository {
	return &LineupRepository{store: s}
}

func (r *LineupRepository) ListByMatch(_ context.Context, matchID string) ([]lineup.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]lineup.Entry, 0)
	for _, item := range r.store.lineups {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	sortLineups(out)
	return out, nil
}

func (r *LineupRepository) ListByPlayer(_ context.Context, playerID string) ([]lineup.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]lineup.Entry, 0)
	for _, item := range r.store.lineups {
		if item.PlayerID == playerID {
			out = append(out, item)
		}
	}
	sortLineups(out)
	return out, nil
}

func (r *LineupRepository) GetByID(_ context.Context, id string) (lineup.Entry, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.lineups[id]
	return item, ok, nil
}

func (r *LineupRepository) Create(_ context.Context, e lineup.Entry) (lineup.Entry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, item := range r.store.lineups {
		if item.MatchID == e.MatchID && item.PlayerID == e.PlayerID {
			return lineup.Entry{}, lineup.ErrDuplicateEntry
		}
	}

	r.store.lineups[e.ID] = e
	return e, nil
}

func (r *LineupRepository) Update(_ context.Context, e lineup.Entry) (lineup.Entry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.lineups[e.ID] = e
	return e, nil
}

func sortLineups(items []lineup.Entry) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})
}
