package postgres

import (
	"time"

	"github.com/lamberpool/matchday/internal/domain/championship"
)

type championshipTableModel struct {
	ID           string    `db:"id"`
	Year         int       `db:"year"`
	SeasonLabel  string    `db:"season_label"`
	Division     string    `db:"division"`
	Tournament   string    `db:"tournament"`
	Title        string    `db:"title"`
	JerseyURL    *string   `db:"jersey_url"`
	AltJerseyURL *string   `db:"alt_jersey_url"`
	Description  *string   `db:"description"`
	SortOrder    int       `db:"sort_order"`
	CreatedAt    time.Time `db:"created_at"`
}

func (m championshipTableModel) toDomain() championship.Championship {
	return championship.Championship{
		ID:           m.ID,
		Year:         m.Year,
		SeasonLabel:  m.SeasonLabel,
		Division:     m.Division,
		Tournament:   m.Tournament,
		Title:        m.Title,
		JerseyURL:    m.JerseyURL,
		AltJerseyURL: m.AltJerseyURL,
		Description:  m.Description,
		SortOrder:    m.SortOrder,
		CreatedAt:    m.CreatedAt,
	}
}
