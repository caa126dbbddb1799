package player

import "context"

// Repository exposes player persistence operations. List accepts an optional
// team filter. Delete also removes the player's lineup entries and their
// ratings across all matches in one transaction.
type Repository interface {
	List(ctx context.Context, teamID string) ([]Player, error)
	GetByID(ctx context.Context, id string) (Player, bool, error)
	Create(ctx context.Context, p Player) (Player, error)
	Update(ctx context.Context, p Player) (Player, error)
	Delete(ctx context.Context, id string) error
}
