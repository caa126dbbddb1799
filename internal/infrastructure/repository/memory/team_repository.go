package memory

import (
	"context"
	"time"

	"github.com/lamberpool/matchday/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func (s *Store) Teams() *TeamRepository {
	return &TeamRepository{store: s}
}

func (r *TeamRepository) GetByID(_ context.Context, id string) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.teams[id]
	return item, ok, nil
}

func (r *TeamRepository) Ensure(_ context.Context, name string) (team.Team, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, item := range r.store.teams {
		if item.Name == name {
			return item, nil
		}
	}

	created := team.Team{
		ID:        r.store.nextID(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	r.store.teams[created.ID] = created
	return created, nil
}
