package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lamberpool/matchday/internal/domain/championship"
	qb "github.com/lamberpool/matchday/internal/platform/querybuilder"
)

type ChampionshipRepository struct {
	db *sqlx.DB
}

func NewChampionshipRepository(db *sqlx.DB) *ChampionshipRepository {
	return &ChampionshipRepository{db: db}
}

func (r *ChampionshipRepository) List(ctx context.Context) ([]championship.Championship, error) {
	query, args, err := qb.Select("*").From("championships").
		OrderBy("year DESC", "sort_order DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select championships query: %w", err)
	}
	return r.selectChampionships(ctx, query, args)
}

func (r *ChampionshipRepository) ListByYear(ctx context.Context, year int) ([]championship.Championship, error) {
	query, args, err := qb.Select("*").From("championships").
		Where(qb.Eq("year", year)).
		OrderBy("year DESC", "sort_order DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select championships by year query: %w", err)
	}
	return r.selectChampionships(ctx, query, args)
}

func (r *ChampionshipRepository) GetByID(ctx context.Context, id string) (championship.Championship, bool, error) {
	query, args, err := qb.Select("*").From("championships").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return championship.Championship{}, false, fmt.Errorf("build select championship query: %w", err)
	}

	var row championshipTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return championship.Championship{}, false, nil
		}
		return championship.Championship{}, false, fmt.Errorf("get championship: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ChampionshipRepository) Create(ctx context.Context, c championship.Championship) (championship.Championship, error) {
	query, args, err := qb.InsertInto("championships").
		Columns("id", "year", "season_label", "division", "tournament", "title",
			"jersey_url", "alt_jersey_url", "description", "sort_order", "created_at").
		Values(c.ID, c.Year, c.SeasonLabel, c.Division, c.Tournament, c.Title,
			c.JerseyURL, c.AltJerseyURL, c.Description, c.SortOrder, c.CreatedAt).
		ToSQL()
	if err != nil {
		return championship.Championship{}, fmt.Errorf("build insert championship query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return championship.Championship{}, championship.ErrDuplicate
		}
		return championship.Championship{}, fmt.Errorf("insert championship: %w", err)
	}
	return c, nil
}

func (r *ChampionshipRepository) Update(ctx context.Context, c championship.Championship) (championship.Championship, error) {
	query, args, err := qb.Update("championships").
		Set("year", c.Year).
		Set("season_label", c.SeasonLabel).
		Set("division", c.Division).
		Set("tournament", c.Tournament).
		Set("title", c.Title).
		Set("jersey_url", c.JerseyURL).
		Set("alt_jersey_url", c.AltJerseyURL).
		Set("description", c.Description).
		Set("sort_order", c.SortOrder).
		Where(qb.Eq("id", c.ID)).
		ToSQL()
	if err != nil {
		return championship.Championship{}, fmt.Errorf("build update championship query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return championship.Championship{}, championship.ErrDuplicate
		}
		return championship.Championship{}, fmt.Errorf("update championship: %w", err)
	}
	return c, nil
}

func (r *ChampionshipRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("championships").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete championship query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete championship: %w", err)
	}
	return nil
}

func (r *ChampionshipRepository) selectChampionships(ctx context.Context, query string, args []any) ([]championship.Championship, error) {
	var rows []championshipTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select championships: %w", err)
	}
	out := make([]championship.Championship, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
