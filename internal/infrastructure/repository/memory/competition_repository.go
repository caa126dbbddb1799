package memory

import (
	"context"
	"sort"

	"github.com/lamberpool/matchday/internal/domain/competition"
)

type CompetitionRepository struct {
	store *Store
}

func (s *Store) Competitions() *CompetitionRepository {
	return &CompetitionRepository{store: s}
}

func (r *CompetitionRepository) ListBySeason(_ context.Context, seasonID string) ([]competition.Competition, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]competition.Competition, 0)
	for _, item := range r.store.competitions {
		if item.SeasonID == seasonID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *CompetitionRepository) ActiveBySeason(_ context.Context, seasonID string) (competition.Competition, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.competitions {
		if item.SeasonID == seasonID && item.IsActive {
			return item, true, nil
		}
	}
	return competition.Competition{}, false, nil
}

func (r *CompetitionRepository) GetByID(_ context.Context, id string) (competition.Competition, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.competitions[id]
	return item, ok, nil
}

func (r *CompetitionRepository) Create(_ context.Context, c competition.Competition) (competition.Competition, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, item := range r.store.competitions {
		if item.SeasonID == c.SeasonID && item.Name == c.Name {
			return competition.Competition{}, competition.ErrDuplicateName
		}
	}

	r.store.competitions[c.ID] = c
	return c, nil
}

func (r *CompetitionRepository) DeleteCascade(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.competitions[id]
	if !ok {
		return nil
	}

	r.store.deleteCompetitionLocked(id)

	// Re-count under the same lock so concurrent deletions of two sibling
	// competitions cannot both leave the season in place.
	if r.store.countCompetitionsLocked(item.SeasonID) > 0 {
		return nil
	}
	parent, ok := r.store.seasons[item.SeasonID]
	if !ok {
		return nil
	}
	delete(r.store.seasons, parent.ID)

	if r.store.countSeasonsLocked(parent.TournamentID) > 0 {
		return nil
	}
	delete(r.store.tournaments, parent.TournamentID)
	return nil
}

func (r *CompetitionRepository) SetJerseyURL(_ context.Context, id string, url *string) (competition.Competition, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.competitions[id]
	if !ok {
		return competition.Competition{}, false, nil
	}
	item.JerseyURL = cloneStringPtr(url)
	r.store.competitions[id] = item
	return item, true, nil
}

func (r *CompetitionRepository) SetFinalTablePhotoURL(_ context.Context, id string, url *string) (competition.Competition, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.competitions[id]
	if !ok {
		return competition.Competition{}, false, nil
	}
	item.FinalTablePhotoURL = cloneStringPtr(url)
	r.store.competitions[id] = item
	return item, true, nil
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	copied := *s
	return &copied
}
