package memory

import (
	"context"
	"sort"

	"github.com/lamberpool/matchday/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func (s *Store) Players() *PlayerRepository {
	return &PlayerRepository{store: s}
}

func (r *PlayerRepository) List(_ context.Context, teamID string) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]player.Player, 0, len(r.store.players))
	for _, item := range r.store.players {
		if teamID != "" && item.TeamID != teamID {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Number < out[j].Number
	})
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.players[id]
	return item, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, item := range r.store.players {
		if item.TeamID == p.TeamID && item.Number == p.Number {
			return player.Player{}, player.ErrDuplicateNumber
		}
	}

	r.store.players[p.ID] = p
	return p, nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) (player.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, item := range r.store.players {
		if item.ID != p.ID && item.TeamID == p.TeamID && item.Number == p.Number {
			return player.Player{}, player.ErrDuplicateNumber
		}
	}

	r.store.players[p.ID] = p
	return p, nil
}

func (r *PlayerRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.players[id]; !ok {
		return nil
	}
	for lineupID, entry := range r.store.lineups {
		if entry.PlayerID == id {
			r.store.deleteLineupLocked(lineupID)
		}
	}
	delete(r.store.players, id)
	return nil
}
