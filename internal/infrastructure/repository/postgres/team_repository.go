package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/lamberpool/matchday/internal/domain/team"
	"github.com/lamberpool/matchday/internal/platform/id"
	qb "github.com/lamberpool/matchday/internal/platform/querybuilder"
)

type TeamRepository struct {
	db  *sqlx.DB
	ids id.Generator
}

func NewTeamRepository(db *sqlx.DB, ids id.Generator) *TeamRepository {
	return &TeamRepository{db: db, ids: ids}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}
	return row.toDomain(), true, nil
}

// Ensure returns the team with the given name, creating it when missing.
// The insert races safely: ON CONFLICT DO NOTHING plus a re-select means
// two concurrent callers both end up with the same row.
func (r *TeamRepository) Ensure(ctx context.Context, name string) (team.Team, error) {
	newID, err := r.ids.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	insert, insertArgs, err := qb.InsertInto("teams").
		Columns("id", "name", "created_at").
		Values(newID, name, time.Now().UTC()).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, insert, insertArgs...); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}

	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("name", name)).
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build select team by name query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("get team by name: %w", err)
	}
	return row.toDomain(), nil
}
