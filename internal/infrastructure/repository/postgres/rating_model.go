package postgres

import (
	"time"

	"github.com/lamberpool/matchday/internal/domain/rating"
)

type ratingTableModel struct {
	ID        string    `db:"id"`
	LineupID  string    `db:"lineup_id"`
	JudgeID   string    `db:"judge_id"`
	Score     int       `db:"score"`
	CreatedAt time.Time `db:"created_at"`
}

func (m ratingTableModel) toDomain() rating.Rating {
	return rating.Rating{
		ID:        m.ID,
		LineupID:  m.LineupID,
		JudgeID:   m.JudgeID,
		Score:     m.Score,
		CreatedAt: m.CreatedAt,
	}
}

type guestRatingTableModel struct {
	ID           string    `db:"id"`
	LineupID     string    `db:"lineup_id"`
	GuestJudgeID string    `db:"guest_judge_id"`
	Score        int       `db:"score"`
	CreatedAt    time.Time `db:"created_at"`
}

func (m guestRatingTableModel) toDomain() rating.GuestRating {
	return rating.GuestRating{
		ID:           m.ID,
		LineupID:     m.LineupID,
		GuestJudgeID: m.GuestJudgeID,
		Score:        m.Score,
		CreatedAt:    m.CreatedAt,
	}
}
