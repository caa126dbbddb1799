package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lamberpool/matchday/internal/domain/season"
	qb "github.com/lamberpool/matchday/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) ListByTournament(ctx context.Context, tournamentID string) ([]season.Season, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(qb.Eq("tournament_id", tournamentID)).
		OrderBy("year DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons by tournament query: %w", err)
	}
	return r.selectSeasons(ctx, query, args)
}

func (r *SeasonRepository) ListAll(ctx context.Context) ([]season.Season, error) {
	query, args, err := qb.Select("*").From("seasons").
		OrderBy("year DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons query: %w", err)
	}
	return r.selectSeasons(ctx, query, args)
}

func (r *SeasonRepository) ActiveByTournament(ctx context.Context, tournamentID string) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(
			qb.Eq("tournament_id", tournamentID),
			qb.Eq("is_active", true),
		).
		OrderBy("year DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build select active season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get active season: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, id string) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build select season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *SeasonRepository) Create(ctx context.Context, s season.Season) (season.Season, error) {
	query, args, err := qb.InsertInto("seasons").
		Columns("id", "year", "tournament_id", "is_active", "created_at").
		Values(s.ID, s.Year, s.TournamentID, s.IsActive, s.CreatedAt).
		ToSQL()
	if err != nil {
		return season.Season{}, fmt.Errorf("build insert season query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return season.Season{}, season.ErrDuplicateYear
		}
		return season.Season{}, fmt.Errorf("insert season: %w", err)
	}
	return s, nil
}

func (r *SeasonRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for season delete: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var competitionIDs []string
	if err := tx.SelectContext(ctx, &competitionIDs,
		`SELECT id FROM competitions WHERE season_id = $1`, id); err != nil {
		return fmt.Errorf("list competitions for season: %w", err)
	}
	if err := deleteCompetitionsTx(ctx, tx, competitionIDs); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM seasons WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete season: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit season delete tx: %w", err)
	}
	return nil
}

func (r *SeasonRepository) selectSeasons(ctx context.Context, query string, args []any) ([]season.Season, error) {
	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select seasons: %w", err)
	}
	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
