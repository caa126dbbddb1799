package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lamberpool/matchday/internal/domain/rating"
	qb "github.com/lamberpool/matchday/internal/platform/querybuilder"
)

type RatingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) ListByLineup(ctx context.Context, lineupID string) ([]rating.Rating, error) {
	query, args, err := qb.Select("*").From("ratings").
		Where(qb.Eq("lineup_id", lineupID)).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select ratings query: %w", err)
	}

	var rows []ratingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select ratings: %w", err)
	}

	out := make([]rating.Rating, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Upsert keeps one score per (lineup entry, judge) pair; a repeat
// submission overwrites the previous score in place.
func (r *RatingRepository) Upsert(ctx context.Context, in rating.Rating) (rating.Rating, error) {
	query, args, err := qb.InsertInto("ratings").
		Columns("id", "lineup_id", "judge_id", "score", "created_at").
		Values(in.ID, in.LineupID, in.JudgeID, in.Score, in.CreatedAt).
		Suffix(`ON CONFLICT (lineup_id, judge_id) DO UPDATE SET score = EXCLUDED.score RETURNING *`).
		ToSQL()
	if err != nil {
		return rating.Rating{}, fmt.Errorf("build upsert rating query: %w", err)
	}

	var row ratingTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return rating.Rating{}, fmt.Errorf("upsert rating: %w", err)
	}
	return row.toDomain(), nil
}

func (r *RatingRepository) DeleteAll(ctx context.Context, lineupID string) (int, error) {
	return deleteRatings(ctx, r.db, "ratings", lineupID)
}

type GuestRatingRepository struct {
	db *sqlx.DB
}

func NewGuestRatingRepository(db *sqlx.DB) *GuestRatingRepository {
	return &GuestRatingRepository{db: db}
}

func (r *GuestRatingRepository) ListByLineup(ctx context.Context, lineupID string) ([]rating.GuestRating, error) {
	query, args, err := qb.Select("*").From("guest_ratings").
		Where(qb.Eq("lineup_id", lineupID)).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select guest ratings query: %w", err)
	}

	var rows []guestRatingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select guest ratings: %w", err)
	}

	out := make([]rating.GuestRating, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *GuestRatingRepository) Upsert(ctx context.Context, in rating.GuestRating) (rating.GuestRating, error) {
	query, args, err := qb.InsertInto("guest_ratings").
		Columns("id", "lineup_id", "guest_judge_id", "score", "created_at").
		Values(in.ID, in.LineupID, in.GuestJudgeID, in.Score, in.CreatedAt).
		Suffix(`ON CONFLICT (lineup_id, guest_judge_id) DO UPDATE SET score = EXCLUDED.score RETURNING *`).
		ToSQL()
	if err != nil {
		return rating.GuestRating{}, fmt.Errorf("build upsert guest rating query: %w", err)
	}

	var row guestRatingTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return rating.GuestRating{}, fmt.Errorf("upsert guest rating: %w", err)
	}
	return row.toDomain(), nil
}

func (r *GuestRatingRepository) DeleteAll(ctx context.Context, lineupID string) (int, error) {
	return deleteRatings(ctx, r.db, "guest_ratings", lineupID)
}

// deleteRatings clears one rating table, optionally scoped to a single
// lineup entry, and reports how many rows went away.
func deleteRatings(ctx context.Context, db *sqlx.DB, table, lineupID string) (int, error) {
	query := fmt.Sprintf("DELETE FROM %s", table)
	var args []any
	if lineupID != "" {
		query += " WHERE lineup_id = $1"
		args = append(args, lineupID)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted %s: %w", table, err)
	}
	return int(affected), nil
}
