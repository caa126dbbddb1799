package season

import "context"

// Repository exposes season persistence operations.
type Repository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]Season, error)
	ListAll(ctx context.Context) ([]Season, error)
	ActiveByTournament(ctx context.Context, tournamentID string) (Season, bool, error)
	GetByID(ctx context.Context, id string) (Season, bool, error)
	Create(ctx context.Context, s Season) (Season, error)
	// Delete removes the season and, in the same transaction, every
	// competition under it with all of their matches, lineup entries,
	// ratings, guest judges and photos. It does not cascade upward.
	Delete(ctx context.Context, id string) error
}
