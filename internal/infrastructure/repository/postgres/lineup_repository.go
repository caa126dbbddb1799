package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lamberpool/matchday/internal/domain/lineup"
	qb "github.com/lamberpool/matchday/internal/platform/querybuilder"
)

type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

func (r *LineupRepository) ListByMatch(ctx context.Context, matchID string) ([]lineup.Entry, error) {
	return r.list(ctx, qb.Eq("match_id", matchID))
}

func (r *LineupRepository) ListByPlayer(ctx context.Context, playerID string) ([]lineup.Entry, error) {
	return r.list(ctx, qb.Eq("player_id", playerID))
}

func (r *LineupRepository) list(ctx context.Context, cond qb.Condition) ([]lineup.Entry, error) {
	query, args, err := qb.Select("*").From("lineups").
		Where(cond).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select lineups query: %w", err)
	}

	var rows []lineupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select lineups: %w", err)
	}

	out := make([]lineup.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *LineupRepository) GetByID(ctx context.Context, id string) (lineup.Entry, bool, error) {
	query, args, err := qb.Select("*").From("lineups").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return lineup.Entry{}, false, fmt.Errorf("build select lineup query: %w", err)
	}

	var row lineupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return lineup.Entry{}, false, nil
		}
		return lineup.Entry{}, false, fmt.Errorf("get lineup: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *LineupRepository) Create(ctx context.Context, e lineup.Entry) (lineup.Entry, error) {
	query, args, err := qb.InsertInto("lineups").
		Columns("id", "match_id", "player_id", "position", "goals", "cards", "created_at").
		Values(e.ID, e.MatchID, e.PlayerID, e.Position, e.Goals, e.Cards, e.CreatedAt).
		ToSQL()
	if err != nil {
		return lineup.Entry{}, fmt.Errorf("build insert lineup query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return lineup.Entry{}, lineup.ErrDuplicateEntry
		}
		return lineup.Entry{}, fmt.Errorf("insert lineup: %w", err)
	}
	return e, nil
}

func (r *LineupRepository) Update(ctx context.Context, e lineup.Entry) (lineup.Entry, error) {
	query, args, err := qb.Update("lineups").
		Set("position", e.Position).
		Set("goals", e.Goals).
		Set("cards", e.Cards).
		Where(qb.Eq("id", e.ID)).
		ToSQL()
	if err != nil {
		return lineup.Entry{}, fmt.Errorf("build update lineup query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return lineup.Entry{}, fmt.Errorf("update lineup: %w", err)
	}
	return e, nil
}
