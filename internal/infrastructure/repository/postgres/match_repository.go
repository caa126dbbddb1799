package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lamberpool/matchday/internal/domain/match"
	qb "github.com/lamberpool/matchday/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	builder := qb.Select("*").From("matches").OrderBy("match_date DESC", "created_at DESC")
	if filter.CompetitionID != "" {
		builder = builder.Where(qb.Eq("competition_id", filter.CompetitionID))
	}
	if filter.TeamID != "" {
		builder = builder.Where(qb.Eq("team_id", filter.TeamID))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	query, args, err := qb.InsertInto("matches").
		Columns("id", "competition_id", "team_id", "opponent", "match_date", "goals_for", "goals_against", "result", "created_at").
		Values(m.ID, m.CompetitionID, m.TeamID, m.Opponent, m.Date, m.GoalsFor, m.GoalsAgainst, string(m.Result), m.CreatedAt).
		ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}
	return m, nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) (match.Match, error) {
	query, args, err := qb.Update("matches").
		Set("opponent", m.Opponent).
		Set("match_date", m.Date).
		Set("goals_for", m.GoalsFor).
		Set("goals_against", m.GoalsAgainst).
		Set("result", string(m.Result)).
		Where(qb.Eq("id", m.ID)).
		ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build update match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	return m, nil
}

func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for match delete: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := deleteMatchesTx(ctx, tx, []string{id}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit match delete tx: %w", err)
	}
	return nil
}

func (r *MatchRepository) DeleteAll(ctx context.Context, competitionID string) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx for match bulk delete: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	builder := qb.Select("id").From("matches")
	if competitionID != "" {
		builder = builder.Where(qb.Eq("competition_id", competitionID))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build select match ids query: %w", err)
	}

	var matchIDs []string
	if err := tx.SelectContext(ctx, &matchIDs, query, args...); err != nil {
		return 0, fmt.Errorf("select match ids: %w", err)
	}

	deleted, err := deleteMatchesTx(ctx, tx, matchIDs)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit match bulk delete tx: %w", err)
	}
	return deleted, nil
}
