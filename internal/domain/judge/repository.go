package judge

import "context"

// Repository exposes the permanent judge pool.
type Repository interface {
	List(ctx context.Context) ([]Judge, error)
	GetByID(ctx context.Context, id string) (Judge, bool, error)
	Create(ctx context.Context, j Judge) (Judge, error)
}

// GuestRepository exposes per-match guest judges. Delete removes the guest
// judge and its guest ratings in one transaction.
type GuestRepository interface {
	ListByMatch(ctx context.Context, matchID string) ([]GuestJudge, error)
	GetByID(ctx context.Context, id string) (GuestJudge, bool, error)
	Create(ctx context.Context, g GuestJudge) (GuestJudge, error)
	Delete(ctx context.Context, id string) error
}
