package memory

import (
	"context"
	"sort"

	"github.com/lamberpool/matchday/internal/domain/judge"
)

type JudgeRepository struct {
	store *Store
}

func (s *Store) Judges() *JudgeRepository {
	return &JudgeRepository{store: s}
}

func (r *JudgeRepository) List(_ context.Context) ([]judge.Judge, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]judge.Judge, 0, len(r.store.judges))
	for _, item := range r.store.judges {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *JudgeRepository) GetByID(_ context.Context, id string) (judge.Judge, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.judges[id]
	return item, ok, nil
}

func (r *JudgeRepository) Create(_ context.Context, j judge.Judge) (judge.Judge, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, item := range r.store.judges {
		if item.Name == j.Name {
			return judge.Judge{}, judge.ErrDuplicateName
		}
	}

	r.store.judges[j.ID] = j
	return j, nil
}

type GuestJudgeRepository struct {
	store *Store
}

func (s *Store) GuestJudges() *GuestJudgeRepository {
	return &GuestJudgeRepository{store: s}
}

func (r *GuestJudgeRepository) ListByMatch(_ context.Context, matchID string) ([]judge.GuestJudge, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]judge.GuestJudge, 0)
	for _, item := range r.store.guestJudges {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *GuestJudgeRepository) GetByID(_ context.Context, id string) (judge.GuestJudge, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.guestJudges[id]
	return item, ok, nil
}

func (r *GuestJudgeRepository) Create(_ context.Context, g judge.GuestJudge) (judge.GuestJudge, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.guestJudges[g.ID] = g
	return g, nil
}

func (r *GuestJudgeRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.guestJudges[id]; !ok {
		return nil
	}
	for ratingID, g := range r.store.guestRatings {
		if g.GuestJudgeID == id {
			delete(r.store.guestRatings, ratingID)
		}
	}
	delete(r.store.guestJudges, id)
	return nil
}
