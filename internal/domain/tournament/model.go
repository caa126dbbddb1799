package tournament

import (
	"errors"
	"time"
)

var ErrDuplicateName = errors.New("tournament name already exists for team")

// Tournament is the root of the containment chain
// Tournament -> Season -> Competition -> Match.
type Tournament struct {
	ID        string
	Name      string
	TeamID    string
	CreatedAt time.Time
}
