package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// deleteMatchesTx removes the given matches together with every dependent
// row: lineup entries with their ratings and guest ratings, the matches'
// guest judges and photos. It returns the number of match rows removed.
// Runs inside the caller's transaction so a cascade is all or nothing.
func deleteMatchesTx(ctx context.Context, tx *sqlx.Tx, matchIDs []string) (int, error) {
	if len(matchIDs) == 0 {
		return 0, nil
	}
	ids := pq.Array(matchIDs)

	statements := []struct {
		label string
		query string
	}{
		{"delete match ratings", `
DELETE FROM ratings
WHERE lineup_id IN (SELECT id FROM lineups WHERE match_id = ANY($1))`},
		{"delete match guest ratings", `
DELETE FROM guest_ratings
WHERE lineup_id IN (SELECT id FROM lineups WHERE match_id = ANY($1))`},
		{"delete match lineups", `DELETE FROM lineups WHERE match_id = ANY($1)`},
		{"delete match guest judges", `DELETE FROM guest_judges WHERE match_id = ANY($1)`},
		{"delete match photos", `DELETE FROM photos WHERE match_id = ANY($1)`},
	}
	for _, st := range statements {
		if _, err := tx.ExecContext(ctx, st.query, ids); err != nil {
			return 0, fmt.Errorf("%s: %w", st.label, err)
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM matches WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("delete matches: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted matches: %w", err)
	}
	return int(affected), nil
}

// deleteCompetitionsTx removes the given competitions and all of their
// matches. It does not walk upward.
func deleteCompetitionsTx(ctx context.Context, tx *sqlx.Tx, competitionIDs []string) error {
	if len(competitionIDs) == 0 {
		return nil
	}

	var matchIDs []string
	err := tx.SelectContext(ctx, &matchIDs,
		`SELECT id FROM matches WHERE competition_id = ANY($1)`, pq.Array(competitionIDs))
	if err != nil {
		return fmt.Errorf("list matches for competitions: %w", err)
	}
	if _, err := deleteMatchesTx(ctx, tx, matchIDs); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM competitions WHERE id = ANY($1)`, pq.Array(competitionIDs)); err != nil {
		return fmt.Errorf("delete competitions: %w", err)
	}
	return nil
}
