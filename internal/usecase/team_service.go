package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lamberpool/matchday/internal/domain/player"
	"github.com/lamberpool/matchday/internal/domain/team"
)

// TeamDetail is a team together with its roster.
type TeamDetail struct {
	Team    team.Team
	Players []player.Player
}

type TeamService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	clubName   string
	now        func() time.Time
}

func NewTeamService(teamRepo team.Repository, playerRepo player.Repository, clubName string) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		clubName:   strings.TrimSpace(clubName),
		now:        time.Now,
	}
}

// Club returns the configured club team, creating it on first use.
func (s *TeamService) Club(ctx context.Context) (team.Team, error) {
	if s.clubName == "" {
		return team.Team{}, fmt.Errorf("%w: club team name is not configured", ErrInvalidInput)
	}

	item, err := s.teamRepo.Ensure(ctx, s.clubName)
	if err != nil {
		return team.Team{}, fmt.Errorf("ensure club team: %w", err)
	}
	return item, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id string) (TeamDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return TeamDetail{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return TeamDetail{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return TeamDetail{}, fmt.Errorf("%w: team=%s", ErrNotFound, id)
	}

	roster, err := s.playerRepo.List(ctx, id)
	if err != nil {
		return TeamDetail{}, fmt.Errorf("list team roster: %w", err)
	}

	return TeamDetail{Team: item, Players: roster}, nil
}
