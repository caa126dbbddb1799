package postgres

import (
	"time"

	"github.com/lamberpool/matchday/internal/domain/season"
)

type seasonTableModel struct {
	ID           string    `db:"id"`
	Year         int       `db:"year"`
	TournamentID string    `db:"tournament_id"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

func (m seasonTableModel) toDomain() season.Season {
	return season.Season{
		ID:           m.ID,
		Year:         m.Year,
		TournamentID: m.TournamentID,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}
