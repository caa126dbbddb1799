package postgres

import (
	"time"

	"github.com/lamberpool/matchday/internal/domain/competition"
)

type competitionTableModel struct {
	ID                 string    `db:"id"`
	Name               string    `db:"name"`
	SeasonID           string    `db:"season_id"`
	IsActive           bool      `db:"is_active"`
	JerseyURL          *string   `db:"jersey_url"`
	FinalTablePhotoURL *string   `db:"final_table_photo_url"`
	CreatedAt          time.Time `db:"created_at"`
}

func (m competitionTableModel) toDomain() competition.Competition {
	return competition.Competition{
		ID:                 m.ID,
		Name:               m.Name,
		SeasonID:           m.SeasonID,
		IsActive:           m.IsActive,
		JerseyURL:          m.JerseyURL,
		FinalTablePhotoURL: m.FinalTablePhotoURL,
		CreatedAt:          m.CreatedAt,
	}
}
