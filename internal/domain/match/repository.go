package match

import "context"

// Filter narrows a match listing; zero values mean no constraint.
type Filter struct {
	CompetitionID string
	TeamID        string
}

// Repository exposes match persistence operations. Delete and DeleteAll also
// remove the match's lineup entries, their ratings and guest ratings, the
// match's guest judges and photos in one transaction; neither cascades up to
// the season or tournament.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Match, error)
	GetByID(ctx context.Context, id string) (Match, bool, error)
	Create(ctx context.Context, m Match) (Match, error)
	Update(ctx context.Context, m Match) (Match, error)
	Delete(ctx context.Context, id string) error
	// DeleteAll removes every match, optionally scoped to one competition,
	// and returns the number of matches removed.
	DeleteAll(ctx context.Context, competitionID string) (int, error)
}
