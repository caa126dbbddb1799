package memory

import (
	"context"
	"sort"

	"github.com/lamberpool/matchday/internal/domain/photo"
)

type PhotoRepository struct {
	store *Store
}

func (s *Store) Photos() *PhotoRepository {
	return &PhotoRepository{store: s}
}

func (r *PhotoRepository) ListByMatch(_ context.Context, matchID string) ([]photo.Photo, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]photo.Photo, 0)
	for _, item := range r.store.photos {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UploadedAt.Equal(out[j].UploadedAt) {
			return out[i].UploadedAt.After(out[j].UploadedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *PhotoRepository) GetByID(_ context.Context, id string) (photo.Photo, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.photos[id]
	return item, ok, nil
}

func (r *PhotoRepository) Create(_ context.Context, p photo.Photo) (photo.Photo, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.photos[p.ID] = p
	return p, nil
}

func (r *PhotoRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.photos, id)
	return nil
}
