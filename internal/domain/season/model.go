package season

import (
	"errors"
	"time"
)

var ErrDuplicateYear = errors.New("season year already exists for tournament")

// Season is one playing year inside a tournament.
type Season struct {
	ID           string
	Year         int
	TournamentID string
	IsActive     bool
	CreatedAt    time.Time
}
