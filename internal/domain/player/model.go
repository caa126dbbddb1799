package player

import (
	"errors"
	"time"
)

var ErrDuplicateNumber = errors.New("shirt number already taken for team")

// Player is a rostered club member.
type Player struct {
	ID        string
	Name      string
	Number    int
	TeamID    string
	CreatedAt time.Time
}
