package lineup

import (
	"errors"
	"time"
)

var ErrDuplicateEntry = errors.New("player already in match lineup")

// Entry links one player to one match with the player's contribution in that
// appearance. Cards holds an informal notation like "Y" or "YR"; the service
// does not interpret it.
type Entry struct {
	ID        string
	MatchID   string
	PlayerID  string
	Position  string
	Goals     int
	Cards     string
	CreatedAt time.Time
}
