package postgres

import (
	"time"

	"github.com/lamberpool/matchday/internal/domain/lineup"
)

type lineupTableModel struct {
	ID        string    `db:"id"`
	MatchID   string    `db:"match_id"`
	PlayerID  string    `db:"player_id"`
	Position  string    `db:"position"`
	Goals     int       `db:"goals"`
	Cards     string    `db:"cards"`
	CreatedAt time.Time `db:"created_at"`
}

func (m lineupTableModel) toDomain() lineup.Entry {
	return lineup.Entry{
		ID:        m.ID,
		MatchID:   m.MatchID,
		PlayerID:  m.PlayerID,
		Position:  m.Position,
		Goals:     m.Goals,
		Cards:     m.Cards,
		CreatedAt: m.CreatedAt,
	}
}
