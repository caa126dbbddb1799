package competition

import "context"

// Repository exposes competition persistence operations.
type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]Competition, error)
	ActiveBySeason(ctx context.Context, seasonID string) (Competition, bool, error)
	GetByID(ctx context.Context, id string) (Competition, bool, error)
	Create(ctx context.Context, c Competition) (Competition, error)
	// DeleteCascade removes the competition together with all of its matches
	// and their children, then walks up the containment chain inside the same
	// transaction: if the parent season has no competitions left it is
	// deleted, and if that season's tournament has no seasons left the
	// tournament is deleted too. The walk stops at the tournament; the team
	// is never touched. Child counts are re-checked inside the transaction so
	// concurrent deletions cannot leave an orphaned empty parent.
	DeleteCascade(ctx context.Context, id string) error
	// SetJerseyURL and SetFinalTablePhotoURL report false when no competition
	// with the given id exists.
	SetJerseyURL(ctx context.Context, id string, url *string) (Competition, bool, error)
	SetFinalTablePhotoURL(ctx context.Context, id string, url *string) (Competition, bool, error)
}
