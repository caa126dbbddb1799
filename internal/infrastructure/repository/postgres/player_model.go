package postgres

import (
	"time"

	"github.com/lamberpool/matchday/internal/domain/player"
)

type playerTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Number    int       `db:"number"`
	TeamID    string    `db:"team_id"`
	CreatedAt time.Time `db:"created_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:        m.ID,
		Name:      m.Name,
		Number:    m.Number,
		TeamID:    m.TeamID,
		CreatedAt: m.CreatedAt,
	}
}
