package postgres

import (
	"time"

	"github.com/lamberpool/matchday/internal/domain/photo"
)

type photoTableModel struct {
	ID         string    `db:"id"`
	MatchID    string    `db:"match_id"`
	URL        string    `db:"url"`
	AssetID    string    `db:"asset_id"`
	UploadedAt time.Time `db:"uploaded_at"`
}

func (m photoTableModel) toDomain() photo.Photo {
	return photo.Photo{
		ID:         m.ID,
		MatchID:    m.MatchID,
		URL:        m.URL,
		AssetID:    m.AssetID,
		UploadedAt: m.UploadedAt,
	}
}
