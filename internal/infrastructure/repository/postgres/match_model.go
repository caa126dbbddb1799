package postgres

import (
	"time"

	"github.com/lamberpool/matchday/internal/domain/match"
)

type matchTableModel struct {
	ID            string    `db:"id"`
	CompetitionID string    `db:"competition_id"`
	TeamID        string    `db:"team_id"`
	Opponent      string    `db:"opponent"`
	Date          time.Time `db:"match_date"`
	GoalsFor      int       `db:"goals_for"`
	GoalsAgainst  int       `db:"goals_against"`
	Result        string    `db:"result"`
	CreatedAt     time.Time `db:"created_at"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:            m.ID,
		CompetitionID: m.CompetitionID,
		TeamID:        m.TeamID,
		Opponent:      m.Opponent,
		Date:          m.Date,
		GoalsFor:      m.GoalsFor,
		GoalsAgainst:  m.GoalsAgainst,
		Result:        match.Result(m.Result),
		CreatedAt:     m.CreatedAt,
	}
}
