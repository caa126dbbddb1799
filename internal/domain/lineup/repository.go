package lineup

import "context"

// Repository exposes lineup-entry persistence operations.
type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]Entry, error)
	ListByPlayer(ctx context.Context, playerID string) ([]Entry, error)
	GetByID(ctx context.Context, id string) (Entry, bool, error)
	Create(ctx context.Context, e Entry) (Entry, error)
	Update(ctx context.Context, e Entry) (Entry, error)
}
