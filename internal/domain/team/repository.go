package team

import "context"

// Repository exposes team persistence operations.
type Repository interface {
	GetByID(ctx context.Context, id string) (Team, bool, error)
	// Ensure returns the team with the given name, creating it atomically
	// when it does not exist yet.
	Ensure(ctx context.Context, name string) (Team, error)
}
