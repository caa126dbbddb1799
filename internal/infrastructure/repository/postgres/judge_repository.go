package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lamberpool/matchday/internal/domain/judge"
	qb "github.com/lamberpool/matchday/internal/platform/querybuilder"
)

type JudgeRepository struct {
	db *sqlx.DB
}

func NewJudgeRepository(db *sqlx.DB) *JudgeRepository {
	return &JudgeRepository{db: db}
}

func (r *JudgeRepository) List(ctx context.Context) ([]judge.Judge, error) {
	query, args, err := qb.Select("*").From("judges").
		OrderBy("created_at", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select judges query: %w", err)
	}

	var rows []judgeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select judges: %w", err)
	}

	out := make([]judge.Judge, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *JudgeRepository) GetByID(ctx context.Context, id string) (judge.Judge, bool, error) {
	query, args, err := qb.Select("*").From("judges").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return judge.Judge{}, false, fmt.Errorf("build select judge query: %w", err)
	}

	var row judgeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return judge.Judge{}, false, nil
		}
		return judge.Judge{}, false, fmt.Errorf("get judge: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *JudgeRepository) Create(ctx context.Context, j judge.Judge) (judge.Judge, error) {
	query, args, err := qb.InsertInto("judges").
		Columns("id", "name", "created_at").
		Values(j.ID, j.Name, j.CreatedAt).
		ToSQL()
	if err != nil {
		return judge.Judge{}, fmt.Errorf("build insert judge query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return judge.Judge{}, judge.ErrDuplicateName
		}
		return judge.Judge{}, fmt.Errorf("insert judge: %w", err)
	}
	return j, nil
}

type GuestJudgeRepository struct {
	db *sqlx.DB
}

func NewGuestJudgeRepository(db *sqlx.DB) *GuestJudgeRepository {
	return &GuestJudgeRepository{db: db}
}

func (r *GuestJudgeRepository) ListByMatch(ctx context.Context, matchID string) ([]judge.GuestJudge, error) {
	query, args, err := qb.Select("*").From("guest_judges").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("created_at", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select guest judges query: %w", err)
	}

	var rows []guestJudgeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select guest judges: %w", err)
	}

	out := make([]judge.GuestJudge, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *GuestJudgeRepository) GetByID(ctx context.Context, id string) (judge.GuestJudge, bool, error) {
	query, args, err := qb.Select("*").From("guest_judges").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return judge.GuestJudge{}, false, fmt.Errorf("build select guest judge query: %w", err)
	}

	var row guestJudgeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return judge.GuestJudge{}, false, nil
		}
		return judge.GuestJudge{}, false, fmt.Errorf("get guest judge: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *GuestJudgeRepository) Create(ctx context.Context, g judge.GuestJudge) (judge.GuestJudge, error) {
	query, args, err := qb.InsertInto("guest_judges").
		Columns("id", "match_id", "name", "created_at").
		Values(g.ID, g.MatchID, g.Name, g.CreatedAt).
		ToSQL()
	if err != nil {
		return judge.GuestJudge{}, fmt.Errorf("build insert guest judge query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return judge.GuestJudge{}, fmt.Errorf("insert guest judge: %w", err)
	}
	return g, nil
}

// Delete removes the guest judge and every score the guest handed out.
func (r *GuestJudgeRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for guest judge delete: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM guest_ratings WHERE guest_judge_id = $1`, id); err != nil {
		return fmt.Errorf("delete guest judge ratings: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM guest_judges WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete guest judge: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit guest judge delete tx: %w", err)
	}
	return nil
}
