package postgres

import (
	"time"

	"github.com/lamberpool/matchday/internal/domain/tournament"
)

type tournamentTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	TeamID    string    `db:"team_id"`
	CreatedAt time.Time `db:"created_at"`
}

func (m tournamentTableModel) toDomain() tournament.Tournament {
	return tournament.Tournament{
		ID:        m.ID,
		Name:      m.Name,
		TeamID:    m.TeamID,
		CreatedAt: m.CreatedAt,
	}
}
