package photo

import "context"

// Repository stores match photos. ListByMatch returns newest first.
type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]Photo, error)
	GetByID(ctx context.Context, id string) (Photo, bool, error)
	Create(ctx context.Context, p Photo) (Photo, error)
	Delete(ctx context.Context, id string) error
}
