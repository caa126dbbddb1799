package memory

import (
	"fmt"
	"sync"

	"github.com/lamberpool/matchday/internal/domain/championship"
	"github.com/lamberpool/matchday/internal/domain/competition"
	"github.com/lamberpool/matchday/internal/domain/judge"
	"github.com/lamberpool/matchday/internal/domain/lineup"
	"github.com/lamberpool/matchday/internal/domain/match"
	"github.com/lamberpool/matchday/internal/domain/photo"
	"github.com/lamberpool/matchday/internal/domain/player"
	"github.com/lamberpool/matchday/internal/domain/rating"
	"github.com/lamberpool/matchday/internal/domain/season"
	"github.com/lamberpool/matchday/internal/domain/team"
	"github.com/lamberpool/matchday/internal/domain/tournament"
)

// Store holds every entity behind one mutex so cascading deletes observe and
// mutate the whole hierarchy atomically, the same guarantee the postgres
// repositories get from a transaction.
type Store struct {
	mu  sync.RWMutex
	seq int

	teams         map[string]team.Team
	tournaments   map[string]tournament.Tournament
	seasons       map[string]season.Season
	competitions  map[string]competition.Competition
	matches       map[string]match.Match
	players       map[string]player.Player
	lineups       map[string]lineup.Entry
	judges        map[string]judge.Judge
	guestJudges   map[string]judge.GuestJudge
	ratings       map[string]rating.Rating
	guestRatings  map[string]rating.GuestRating
	photos        map[string]photo.Photo
	championships map[string]championship.Championship
}

func NewStore() *Store {
	return &Store{
		teams:         make(map[string]team.Team),
		tournaments:   make(map[string]tournament.Tournament),
		seasons:       make(map[string]season.Season),
		competitions:  make(map[string]competition.Competition),
		matches:       make(map[string]match.Match),
		players:       make(map[string]player.Player),
		lineups:       make(map[string]lineup.Entry),
		judges:        make(map[string]judge.Judge),
		guestJudges:   make(map[string]judge.GuestJudge),
		ratings:       make(map[string]rating.Rating),
		guestRatings:  make(map[string]rating.GuestRating),
		photos:        make(map[string]photo.Photo),
		championships: make(map[string]championship.Championship),
	}
}

// nextID must be called with the write lock held.
func (s *Store) nextID() string {
	s.seq++
	return fmt.Sprintf("mem-%06d", s.seq)
}

// deleteMatchLocked removes a match and every dependent row: lineup entries
// with their ratings and guest ratings, the match's guest judges and photos.
// Must be called with the write lock held.
func (s *Store) deleteMatchLocked(matchID string) {
	for lineupID, entry := range s.lineups {
		if entry.MatchID != matchID {
			continue
		}
		s.deleteLineupLocked(lineupID)
	}
	for guestID, guest := range s.guestJudges {
		if guest.MatchID == matchID {
			delete(s.guestJudges, guestID)
		}
	}
	for photoID, p := range s.photos {
		if p.MatchID == matchID {
			delete(s.photos, photoID)
		}
	}
	delete(s.matches, matchID)
}

// deleteLineupLocked removes a lineup entry and its ratings of both kinds.
func (s *Store) deleteLineupLocked(lineupID string) {
	for ratingID, r := range s.ratings {
		if r.LineupID == lineupID {
			delete(s.ratings, ratingID)
		}
	}
	for ratingID, g := range s.guestRatings {
		if g.LineupID == lineupID {
			delete(s.guestRatings, ratingID)
		}
	}
	delete(s.lineups, lineupID)
}

// deleteCompetitionLocked removes the competition with all of its matches.
// It does not walk upward; DeleteCascade layers that on top.
func (s *Store) deleteCompetitionLocked(competitionID string) {
	for matchID, m := range s.matches {
		if m.CompetitionID == competitionID {
			s.deleteMatchLocked(matchID)
		}
	}
	delete(s.competitions, competitionID)
}

func (s *Store) countCompetitionsLocked(seasonID string) int {
	n := 0
	for _, c := range s.competitions {
		if c.SeasonID == seasonID {
			n++
		}
	}
	return n
}

func (s *Store) countSeasonsLocked(tournamentID string) int {
	n := 0
	for _, sn := range s.seasons {
		if sn.TournamentID == tournamentID {
			n++
		}
	}
	return n
}
