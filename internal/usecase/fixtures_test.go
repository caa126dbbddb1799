package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/lamberpool/matchday/internal/domain/judge"
	"github.com/lamberpool/matchday/internal/domain/lineup"
	"github.com/lamberpool/matchday/internal/domain/rating"
)

func guestJudgeFixture(id, matchID, name string) judge.GuestJudge {
	return judge.GuestJudge{
		ID:        id,
		MatchID:   matchID,
		Name:      name,
		CreatedAt: time.Date(2025, 3, 9, 11, 0, 0, 0, time.UTC),
	}
}

func lineupFixture(id, matchID, playerID string) lineup.Entry {
	return lineup.Entry{
		ID:        id,
		MatchID:   matchID,
		PlayerID:  playerID,
		Position:  "ST",
		Goals:     1,
		CreatedAt: time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC),
	}
}

func ratingFixture(id, lineupID, judgeID string, score int) rating.Rating {
	return rating.Rating{
		ID:        id,
		LineupID:  lineupID,
		JudgeID:   judgeID,
		Score:     score,
		CreatedAt: time.Date(2025, 3, 9, 13, 0, 0, 0, time.UTC),
	}
}

type recordingAssetRemover struct {
	mu      sync.Mutex
	removed []string
	err     error
}

func (r *recordingAssetRemover) Remove(_ context.Context, assetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removed = append(r.removed, assetID)
	return r.err
}

func (r *recordingAssetRemover) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.removed...)
}
