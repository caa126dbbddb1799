package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lamberpool/matchday/internal/domain/player"
	qb "github.com/lamberpool/matchday/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, teamID string) ([]player.Player, error) {
	builder := qb.Select("*").From("players").OrderBy("number", "name")
	if teamID != "" {
		builder = builder.Where(qb.Eq("team_id", teamID))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	query, args, err := qb.InsertInto("players").
		Columns("id", "name", "number", "team_id", "created_at").
		Values(p.ID, p.Name, p.Number, p.TeamID, p.CreatedAt).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return player.Player{}, player.ErrDuplicateNumber
		}
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}
	return p, nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) (player.Player, error) {
	query, args, err := qb.Update("players").
		Set("name", p.Name).
		Set("number", p.Number).
		Where(qb.Eq("id", p.ID)).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build update player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return player.Player{}, player.ErrDuplicateNumber
		}
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	return p, nil
}

// Delete removes the player together with the player's lineup entries and
// the ratings attached to them, across every match.
func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for player delete: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	statements := []struct {
		label string
		query string
	}{
		{"delete player ratings", `
DELETE FROM ratings
WHERE lineup_id IN (SELECT id FROM lineups WHERE player_id = $1)`},
		{"delete player guest ratings", `
DELETE FROM guest_ratings
WHERE lineup_id IN (SELECT id FROM lineups WHERE player_id = $1)`},
		{"delete player lineups", `DELETE FROM lineups WHERE player_id = $1`},
		{"delete player", `DELETE FROM players WHERE id = $1`},
	}
	for _, st := range statements {
		if _, err := tx.ExecContext(ctx, st.query, id); err != nil {
			return fmt.Errorf("%s: %w", st.label, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit player delete tx: %w", err)
	}
	return nil
}
