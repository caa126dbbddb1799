package tournament

import "context"

// Repository exposes tournament persistence operations. List and First accept
// an optional team filter (empty teamID means all teams).
type Repository interface {
	List(ctx context.Context, teamID string) ([]Tournament, error)
	First(ctx context.Context, teamID string) (Tournament, bool, error)
	GetByID(ctx context.Context, id string) (Tournament, bool, error)
	Create(ctx context.Context, t Tournament) (Tournament, error)
}
