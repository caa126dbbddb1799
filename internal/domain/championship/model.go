package championship

import (
	"errors"
	"time"
)

var ErrDuplicate = errors.New("championship already recorded")

// Championship is an honours-board entry for a title the club won.
// SortOrder breaks ties between titles won in the same year.
type Championship struct {
	ID           string
	Year         int
	SeasonLabel  string
	Division     string
	Tournament   string
	Title        string
	JerseyURL    *string
	AltJerseyURL *string
	Description  *string
	SortOrder    int
	CreatedAt    time.Time
}
