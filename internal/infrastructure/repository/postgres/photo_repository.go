package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lamberpool/matchday/internal/domain/photo"
	qb "github.com/lamberpool/matchday/internal/platform/querybuilder"
)

type PhotoRepository struct {
	db *sqlx.DB
}

func NewPhotoRepository(db *sqlx.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) ListByMatch(ctx context.Context, matchID string) ([]photo.Photo, error) {
	query, args, err := qb.Select("*").From("photos").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("uploaded_at DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select photos query: %w", err)
	}

	var rows []photoTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select photos: %w", err)
	}

	out := make([]photo.Photo, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PhotoRepository) GetByID(ctx context.Context, id string) (photo.Photo, bool, error) {
	query, args, err := qb.Select("*").From("photos").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return photo.Photo{}, false, fmt.Errorf("build select photo query: %w", err)
	}

	var row photoTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return photo.Photo{}, false, nil
		}
		return photo.Photo{}, false, fmt.Errorf("get photo: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PhotoRepository) Create(ctx context.Context, p photo.Photo) (photo.Photo, error) {
	query, args, err := qb.InsertInto("photos").
		Columns("id", "match_id", "url", "asset_id", "uploaded_at").
		Values(p.ID, p.MatchID, p.URL, p.AssetID, p.UploadedAt).
		ToSQL()
	if err != nil {
		return photo.Photo{}, fmt.Errorf("build insert photo query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return photo.Photo{}, fmt.Errorf("insert photo: %w", err)
	}
	return p, nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("photos").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete photo query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}
