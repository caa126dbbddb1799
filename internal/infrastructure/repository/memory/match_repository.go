package memory

import (
	"context"
	"sort"

	"github.com/lamberpool/matchday/internal/domain/match"
)

type MatchRepository struct {
	store *Store
}

func (s *Store) Matches() *MatchRepository {
	return &MatchRepository{store: s}
}

func (r *MatchRepository) List(_ context.Context, filter match.Filter) ([]match.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.store.matches {
		if filter.CompetitionID != "" && item.CompetitionID != filter.CompetitionID {
			continue
		}
		if filter.TeamID != "" && item.TeamID != filter.TeamID {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.matches[id]
	return item, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) (match.Match, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.matches[m.ID] = m
	return m, nil
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) (match.Match, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.matches[m.ID] = m
	return m, nil
}

func (r *MatchRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.matches[id]; !ok {
		return nil
	}
	r.store.deleteMatchLocked(id)
	return nil
}

func (r *MatchRepository) DeleteAll(_ context.Context, competitionID string) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	deleted := 0
	for matchID, item := range r.store.matches {
		if competitionID != "" && item.CompetitionID != competitionID {
			continue
		}
		r.store.deleteMatchLocked(matchID)
		deleted++
	}
	return deleted, nil
}
