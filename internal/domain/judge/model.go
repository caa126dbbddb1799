package judge

import (
	"errors"
	"time"
)

var ErrDuplicateName = errors.New("judge name already exists")

// Judge belongs to the permanent pool and may rate any match.
type Judge struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// GuestJudge is invited for a single match and exists only within that
// match's lifetime.
type GuestJudge struct {
	ID        string
	MatchID   string
	Name      string
	CreatedAt time.Time
}
