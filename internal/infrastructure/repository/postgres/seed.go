package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lamberpool/matchday/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the shared fixture set into an empty database. A
// database that already has a team is left untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	seedTeam := memory.SeedTeam()
	if _, err := tx.ExecContext(ctx, `
INSERT INTO teams (id, name, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO NOTHING`,
		seedTeam.ID, seedTeam.Name, seedTeam.CreatedAt); err != nil {
		return fmt.Errorf("seed team %s: %w", seedTeam.ID, err)
	}

	for _, t := range memory.SeedTournaments() {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO tournaments (id, name, team_id, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO NOTHING`,
			t.ID, t.Name, t.TeamID, t.CreatedAt); err != nil {
			return fmt.Errorf("seed tournament %s: %w", t.ID, err)
		}
	}

	for _, s := range memory.SeedSeasons() {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO seasons (id, year, tournament_id, is_active, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO NOTHING`,
			s.ID, s.Year, s.TournamentID, s.IsActive, s.CreatedAt); err != nil {
			return fmt.Errorf("seed season %s: %w", s.ID, err)
		}
	}

	for _, c := range memory.SeedCompetitions() {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO competitions (id, name, season_id, is_active, jersey_url, final_table_photo_url, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name, c.SeasonID, c.IsActive, c.JerseyURL, c.FinalTablePhotoURL, c.CreatedAt); err != nil {
			return fmt.Errorf("seed competition %s: %w", c.ID, err)
		}
	}

	for _, m := range memory.SeedMatches() {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO matches (id, competition_id, team_id, opponent, match_date, goals_for, goals_against, result, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO NOTHING`,
			m.ID, m.CompetitionID, m.TeamID, m.Opponent, m.Date, m.GoalsFor, m.GoalsAgainst, string(m.Result), m.CreatedAt); err != nil {
			return fmt.Errorf("seed match %s: %w", m.ID, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO players (id, name, number, team_id, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Name, p.Number, p.TeamID, p.CreatedAt); err != nil {
			return fmt.Errorf("seed player %s: %w", p.ID, err)
		}
	}

	for _, j := range memory.SeedJudges() {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO judges (id, name, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO NOTHING`,
			j.ID, j.Name, j.CreatedAt); err != nil {
			return fmt.Errorf("seed judge %s: %w", j.ID, err)
		}
	}

	for _, c := range memory.SeedChampionships() {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO championships (id, year, season_label, division, tournament, title, jersey_url, alt_jersey_url, description, sort_order, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Year, c.SeasonLabel, c.Division, c.Tournament, c.Title,
			c.JerseyURL, c.AltJerseyURL, c.Description, c.SortOrder, c.CreatedAt); err != nil {
			return fmt.Errorf("seed championship %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
