package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lamberpool/matchday/internal/domain/competition"
	qb "github.com/lamberpool/matchday/internal/platform/querybuilder"
)

type CompetitionRepository struct {
	db *sqlx.DB
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) ListBySeason(ctx context.Context, seasonID string) ([]competition.Competition, error) {
	query, args, err := qb.Select("*").From("competitions").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("created_at", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select competitions query: %w", err)
	}

	var rows []competitionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select competitions: %w", err)
	}

	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CompetitionRepository) ActiveBySeason(ctx context.Context, seasonID string) (competition.Competition, bool, error) {
	query, args, err := qb.Select("*").From("competitions").
		Where(
			qb.Eq("season_id", seasonID),
			qb.Eq("is_active", true),
		).
		OrderBy("created_at").
		Limit(1).
		ToSQL()
	if err != nil {
		return competition.Competition{}, false, fmt.Errorf("build select active competition query: %w", err)
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Competition{}, false, nil
		}
		return competition.Competition{}, false, fmt.Errorf("get active competition: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *CompetitionRepository) GetByID(ctx context.Context, id string) (competition.Competition, bool, error) {
	query, args, err := qb.Select("*").From("competitions").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return competition.Competition{}, false, fmt.Errorf("build select competition query: %w", err)
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Competition{}, false, nil
		}
		return competition.Competition{}, false, fmt.Errorf("get competition: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *CompetitionRepository) Create(ctx context.Context, c competition.Competition) (competition.Competition, error) {
	query, args, err := qb.InsertInto("competitions").
		Columns("id", "name", "season_id", "is_active", "jersey_url", "final_table_photo_url", "created_at").
		Values(c.ID, c.Name, c.SeasonID, c.IsActive, c.JerseyURL, c.FinalTablePhotoURL, c.CreatedAt).
		ToSQL()
	if err != nil {
		return competition.Competition{}, fmt.Errorf("build insert competition query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return competition.Competition{}, competition.ErrDuplicateName
		}
		return competition.Competition{}, fmt.Errorf("insert competition: %w", err)
	}
	return c, nil
}

// DeleteCascade removes the competition with every match under it, then
// walks up: an emptied season is deleted, and an emptied tournament after
// it. The season row is locked with FOR UPDATE before the sibling re-count;
// at READ COMMITTED each count would otherwise still see the other sibling
// mid-delete and two concurrent deletes could both leave an empty parent
// behind. The tournament row is locked the same way before the season count.
func (r *CompetitionRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for competition delete: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var seasonID string
	if err := tx.GetContext(ctx, &seasonID,
		`SELECT season_id FROM competitions WHERE id = $1`, id); err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("get competition season: %w", err)
	}

	var tournamentID string
	seasonExists := true
	if err := tx.GetContext(ctx, &tournamentID,
		`SELECT tournament_id FROM seasons WHERE id = $1 FOR UPDATE`, seasonID); err != nil {
		if !isNotFound(err) {
			return fmt.Errorf("lock competition season: %w", err)
		}
		seasonExists = false
	}

	if err := deleteCompetitionsTx(ctx, tx, []string{id}); err != nil {
		return err
	}

	var remaining int
	if err := tx.GetContext(ctx, &remaining,
		`SELECT COUNT(1) FROM competitions WHERE season_id = $1`, seasonID); err != nil {
		return fmt.Errorf("count sibling competitions: %w", err)
	}
	if remaining == 0 && seasonExists {
		var lockedID string
		tournamentExists := true
		if err := tx.GetContext(ctx, &lockedID,
			`SELECT id FROM tournaments WHERE id = $1 FOR UPDATE`, tournamentID); err != nil {
			if !isNotFound(err) {
				return fmt.Errorf("lock season tournament: %w", err)
			}
			tournamentExists = false
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM seasons WHERE id = $1`, seasonID); err != nil {
			return fmt.Errorf("delete emptied season: %w", err)
		}
		if tournamentExists {
			if err := tx.GetContext(ctx, &remaining,
				`SELECT COUNT(1) FROM seasons WHERE tournament_id = $1`, tournamentID); err != nil {
				return fmt.Errorf("count sibling seasons: %w", err)
			}
			if remaining == 0 {
				if _, err := tx.ExecContext(ctx,
					`DELETE FROM tournaments WHERE id = $1`, tournamentID); err != nil {
					return fmt.Errorf("delete emptied tournament: %w", err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit competition delete tx: %w", err)
	}
	return nil
}

func (r *CompetitionRepository) SetJerseyURL(ctx context.Context, id string, url *string) (competition.Competition, bool, error) {
	return r.setImageColumn(ctx, id, "jersey_url", url)
}

func (r *CompetitionRepository) SetFinalTablePhotoURL(ctx context.Context, id string, url *string) (competition.Competition, bool, error) {
	return r.setImageColumn(ctx, id, "final_table_photo_url", url)
}

func (r *CompetitionRepository) setImageColumn(ctx context.Context, id, column string, url *string) (competition.Competition, bool, error) {
	query, args, err := qb.Update("competitions").
		Set(column, url).
		Where(qb.Eq("id", id)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return competition.Competition{}, false, fmt.Errorf("build update competition %s query: %w", column, err)
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Competition{}, false, nil
		}
		return competition.Competition{}, false, fmt.Errorf("update competition %s: %w", column, err)
	}
	return row.toDomain(), true, nil
}
