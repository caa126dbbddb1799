package memory

import (
	"time"

	"github.com/lamberpool/matchday/internal/domain/championship"
	"github.com/lamberpool/matchday/internal/domain/competition"
	"github.com/lamberpool/matchday/internal/domain/judge"
	"github.com/lamberpool/matchday/internal/domain/match"
	"github.com/lamberpool/matchday/internal/domain/player"
	"github.com/lamberpool/matchday/internal/domain/season"
	"github.com/lamberpool/matchday/internal/domain/team"
	"github.com/lamberpool/matchday/internal/domain/tournament"
)

// Fixed IDs so dev and test setups can reference seeded rows directly.
const (
	SeedTeamID        = "team-lamberpool"
	SeedTournamentID  = "trn-sunday-league"
	SeedSeasonID      = "ssn-2025"
	SeedCompetitionID = "cmp-2025-regular"
)

func SeedTeam() team.Team {
	return team.Team{
		ID:        SeedTeamID,
		Name:      "Lamberpool FC",
		CreatedAt: seedTime(0),
	}
}

func SeedTournaments() []tournament.Tournament {
	return []tournament.Tournament{
		{ID: SeedTournamentID, Name: "Sunday League", TeamID: SeedTeamID, CreatedAt: seedTime(1)},
	}
}

func SeedSeasons() []season.Season {
	return []season.Season{
		{ID: "ssn-2024", Year: 2024, TournamentID: SeedTournamentID, IsActive: false, CreatedAt: seedTime(2)},
		{ID: SeedSeasonID, Year: 2025, TournamentID: SeedTournamentID, IsActive: true, CreatedAt: seedTime(3)},
	}
}

func SeedCompetitions() []competition.Competition {
	return []competition.Competition{
		{ID: "cmp-2024-regular", Name: "Regular Stage", SeasonID: "ssn-2024", IsActive: false, CreatedAt: seedTime(4)},
		{ID: SeedCompetitionID, Name: "Regular Stage", SeasonID: SeedSeasonID, IsActive: true, CreatedAt: seedTime(5)},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:            "mtc-001",
			CompetitionID: SeedCompetitionID,
			TeamID:        SeedTeamID,
			Opponent:      "Red Star Garage",
			Date:          time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC),
			GoalsFor:      3,
			GoalsAgainst:  1,
			Result:        match.ResultWin,
			CreatedAt:     seedTime(6),
		},
		{
			ID:            "mtc-002",
			CompetitionID: SeedCompetitionID,
			TeamID:        SeedTeamID,
			Opponent:      "Dockside Rovers",
			Date:          time.Date(2025, 3, 16, 10, 0, 0, 0, time.UTC),
			GoalsFor:      2,
			GoalsAgainst:  2,
			Result:        match.ResultDraw,
			CreatedAt:     seedTime(7),
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "ply-01", Name: "Marco Di Stefano", Number: 1, TeamID: SeedTeamID, CreatedAt: seedTime(8)},
		{ID: "ply-07", Name: "Davide Lombardi", Number: 7, TeamID: SeedTeamID, CreatedAt: seedTime(9)},
		{ID: "ply-09", Name: "Luca Ferraro", Number: 9, TeamID: SeedTeamID, CreatedAt: seedTime(10)},
		{ID: "ply-10", Name: "Andrea Colombo", Number: 10, TeamID: SeedTeamID, CreatedAt: seedTime(11)},
	}
}

func SeedJudges() []judge.Judge {
	return []judge.Judge{
		{ID: "jdg-01", Name: "Franco", CreatedAt: seedTime(12)},
		{ID: "jdg-02", Name: "Beppe", CreatedAt: seedTime(13)},
	}
}

func SeedChampionships() []championship.Championship {
	return []championship.Championship{
		{
			ID:          "chp-2023-d2",
			Year:        2023,
			SeasonLabel: "2022/2023",
			Division:    "Second Division",
			Tournament:  "Sunday League",
			Title:       "League Champions",
			SortOrder:   1,
			CreatedAt:   seedTime(14),
		},
	}
}

// Seed loads the fixture set above into the store. Existing rows with the
// same IDs are overwritten, so calling it twice is harmless.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := SeedTeam()
	s.teams[t.ID] = t
	for _, item := range SeedTournaments() {
		s.tournaments[item.ID] = item
	}
	for _, item := range SeedSeasons() {
		s.seasons[item.ID] = item
	}
	for _, item := range SeedCompetitions() {
		s.competitions[item.ID] = item
	}
	for _, item := range SeedMatches() {
		s.matches[item.ID] = item
	}
	for _, item := range SeedPlayers() {
		s.players[item.ID] = item
	}
	for _, item := range SeedJudges() {
		s.judges[item.ID] = item
	}
	for _, item := range SeedChampionships() {
		s.championships[item.ID] = item
	}
}

func seedTime(step int) time.Time {
	return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(step) * time.Minute)
}
