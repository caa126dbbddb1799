package rating

import "context"

// Repository stores permanent judge ratings. Upsert inserts a new rating or
// replaces the score of an existing (lineup entry, judge) pair.
type Repository interface {
	ListByLineup(ctx context.Context, lineupID string) ([]Rating, error)
	Upsert(ctx context.Context, r Rating) (Rating, error)
	DeleteAll(ctx context.Context, lineupID string) (int, error)
}

// GuestRepository stores guest judge ratings, keyed by
// (lineup entry, guest judge).
type GuestRepository interface {
	ListByLineup(ctx context.Context, lineupID string) ([]GuestRating, error)
	Upsert(ctx context.Context, g GuestRating) (GuestRating, error)
	DeleteAll(ctx context.Context, lineupID string) (int, error)
}
