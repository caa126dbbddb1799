package memory

import (
	"context"
	"sort"

	"github.com/lamberpool/matchday/internal/domain/season"
)

type SeasonRepository struct {
	store *Store
}

func (s *Store) Seasons() *SeasonRepository {
	return &SeasonRepository{store: s}
}

func (r *SeasonRepository) ListByTournament(_ context.Context, tournamentID string) ([]season.Season, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]season.Season, 0)
	for _, item := range r.store.seasons {
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	sortSeasons(out)
	return out, nil
}

func (r *SeasonRepository) ListAll(_ context.Context) ([]season.Season, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]season.Season, 0, len(r.store.seasons))
	for _, item := range r.store.seasons {
		out = append(out, item)
	}
	sortSeasons(out)
	return out, nil
}

func (r *SeasonRepository) ActiveByTournament(_ context.Context, tournamentID string) (season.Season, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var best season.Season
	found := false
	for _, item := range r.store.seasons {
		if item.TournamentID != tournamentID || !item.IsActive {
			continue
		}
		if !found || item.Year > best.Year {
			best = item
			found = true
		}
	}
	return best, found, nil
}

func (r *SeasonRepository) GetByID(_ context.Context, id string) (season.Season, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.seasons[id]
	return item, ok, nil
}

func (r *SeasonRepository) Create(_ context.Context, s season.Season) (season.Season, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, item := range r.store.seasons {
		if item.TournamentID == s.TournamentID && item.Year == s.Year {
			return season.Season{}, season.ErrDuplicateYear
		}
	}

	r.store.seasons[s.ID] = s
	return s, nil
}

func (r *SeasonRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.seasons[id]; !ok {
		return nil
	}
	for competitionID, c := range r.store.competitions {
		if c.SeasonID == id {
			r.store.deleteCompetitionLocked(competitionID)
		}
	}
	delete(r.store.seasons, id)
	return nil
}

func sortSeasons(items []season.Season) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Year > items[j].Year
	})
}
