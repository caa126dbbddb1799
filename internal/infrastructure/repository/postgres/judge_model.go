package postgres

import (
	"time"

	"github.com/lamberpool/matchday/internal/domain/judge"
)

type judgeTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func (m judgeTableModel) toDomain() judge.Judge {
	return judge.Judge{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

type guestJudgeTableModel struct {
	ID        string    `db:"id"`
	MatchID   string    `db:"match_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func (m guestJudgeTableModel) toDomain() judge.GuestJudge {
	return judge.GuestJudge{
		ID:        m.ID,
		MatchID:   m.MatchID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}
