package memory

import (
	"context"
	"sort"

	"github.com/lamberpool/matchday/internal/domain/tournament"
)

type TournamentRepository struct {
	store *Store
}

func (s *Store) Tournaments() *TournamentRepository {
	return &TournamentRepository{store: s}
}

func (r *TournamentRepository) List(_ context.Context, teamID string) ([]tournament.Tournament, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.store.tournaments))
	for _, item := range r.store.tournaments {
		if teamID != "" && item.TeamID != teamID {
			continue
		}
		out = append(out, item)
	}
	sortTournaments(out)
	return out, nil
}

func (r *TournamentRepository) First(ctx context.Context, teamID string) (tournament.Tournament, bool, error) {
	items, err := r.List(ctx, teamID)
	if err != nil || len(items) == 0 {
		return tournament.Tournament{}, false, err
	}
	return items[0], true, nil
}

func (r *TournamentRepository) GetByID(_ context.Context, id string) (tournament.Tournament, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.tournaments[id]
	return item, ok, nil
}

func (r *TournamentRepository) Create(_ context.Context, t tournament.Tournament) (tournament.Tournament, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, item := range r.store.tournaments {
		if item.TeamID == t.TeamID && item.Name == t.Name {
			return tournament.Tournament{}, tournament.ErrDuplicateName
		}
	}

	r.store.tournaments[t.ID] = t
	return t, nil
}

func sortTournaments(items []tournament.Tournament) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].Name < items[j].Name
	})
}
