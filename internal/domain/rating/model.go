package rating

import (
	"math"
	"time"
)

// Score bounds, inclusive.
const (
	MinScore = 1
	MaxScore = 10
)

// Rating is a permanent judge's score for one lineup entry. One rating per
// (lineup entry, judge) pair; a second submission replaces the first.
type Rating struct {
	ID        string
	LineupID  string
	JudgeID   string
	Score     int
	CreatedAt time.Time
}

// GuestRating is a guest judge's score for one lineup entry, keyed by
// (lineup entry, guest judge).
type GuestRating struct {
	ID           string
	LineupID     string
	GuestJudgeID string
	Score        int
	CreatedAt    time.Time
}

// ValidScore reports whether s is within the accepted range.
func ValidScore(s int) bool {
	return s >= MinScore && s <= MaxScore
}

// Average pools permanent and guest scores into a single mean, rounded to
// two decimals. Returns 0 when there are no scores at all.
func Average(ratings []Rating, guests []GuestRating) float64 {
	n := len(ratings) + len(guests)
	if n == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}
	for _, g := range guests {
		sum += g.Score
	}
	return math.Round(float64(sum)/float64(n)*100) / 100
}
