package memory

import (
	"context"
	"sort"

	"github.com/lamberpool/matchday/internal/domain/rating"
)

type RatingRepository struct {
	store *Store
}

func (s *Store) Ratings() *RatingRepository {
	return &RatingRepository{store: s}
}

func (r *RatingRepository) ListByLineup(_ context.Context, lineupID string) ([]rating.Rating, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]rating.Rating, 0)
	for _, item := range r.store.ratings {
		if item.LineupID == lineupID {
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

func (r *RatingRepository) Upsert(_ context.Context, item rating.Rating) (rating.Rating, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for existingID, existing := range r.store.ratings {
		if existing.LineupID == item.LineupID && existing.JudgeID == item.JudgeID {
			existing.Score = item.Score
			r.store.ratings[existingID] = existing
			return existing, nil
		}
	}

	r.store.ratings[item.ID] = item
	return item, nil
}

func (r *RatingRepository) DeleteAll(_ context.Context, lineupID string) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	deleted := 0
	for existingID, existing := range r.store.ratings {
		if lineupID != "" && existing.LineupID != lineupID {
			continue
		}
		delete(r.store.ratings, existingID)
		deleted++
	}
	return deleted, nil
}

type GuestRatingRepository struct {
	store *Store
}

func (s *Store) GuestRatings() *GuestRatingRepository {
	return &GuestRatingRepository{store: s}
}

func (r *GuestRatingRepository) ListByLineup(_ context.Context, lineupID string) ([]rating.GuestRating, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]rating.GuestRating, 0)
	for _, item := range r.store.guestRatings {
		if item.LineupID == lineupID {
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

func (r *GuestRatingRepository) Upsert(_ context.Context, item rating.GuestRating) (rating.GuestRating, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for existingID, existing := range r.store.guestRatings {
		if existing.LineupID == item.LineupID && existing.GuestJudgeID == item.GuestJudgeID {
			existing.Score = item.Score
			r.store.guestRatings[existingID] = existing
			return existing, nil
		}
	}

	r.store.guestRatings[item.ID] = item
	return item, nil
}

func (r *GuestRatingRepository) DeleteAll(_ context.Context, lineupID string) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	deleted := 0
	for existingID, existing := range r.store.guestRatings {
		if lineupID != "" && existing.LineupID != lineupID {
			continue
		}
		delete(r.store.guestRatings, existingID)
		deleted++
	}
	return deleted, nil
}
