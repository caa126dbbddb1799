package match

import "time"

// Result is the stored outcome of a match from the club's perspective.
type Result string

const (
	ResultWin  Result = "W"
	ResultLoss Result = "L"
	ResultDraw Result = "D"
)

// Match is one fixture played by the club inside a competition. Result is
// derived from the goal counts and recomputed on every write that touches
// them; it is never accepted from a caller.
type Match struct {
	ID            string
	CompetitionID string
	TeamID        string
	Opponent      string
	Date          time.Time
	GoalsFor      int
	GoalsAgainst  int
	Result        Result
	CreatedAt     time.Time
}

// DeriveResult computes the stored result from the goal counts.
func DeriveResult(goalsFor, goalsAgainst int) Result {
	switch {
	case goalsFor > goalsAgainst:
		return ResultWin
	case goalsFor < goalsAgainst:
		return ResultLoss
	default:
		return ResultDraw
	}
}
