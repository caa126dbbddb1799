package championship

import "context"

// Repository stores honours-board entries. List returns entries ordered by
// year descending, then sort order descending.
type Repository interface {
	List(ctx context.Context) ([]Championship, error)
	ListByYear(ctx context.Context, year int) ([]Championship, error)
	GetByID(ctx context.Context, id string) (Championship, bool, error)
	Create(ctx context.Context, c Championship) (Championship, error)
	Update(ctx context.Context, c Championship) (Championship, error)
	Delete(ctx context.Context, id string) error
}
