package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lamberpool/matchday/internal/domain/team"
	"github.com/lamberpool/matchday/internal/domain/tournament"
	"github.com/lamberpool/matchday/internal/platform/id"
)

type CreateTournamentInput struct {
	Name   string
	TeamID string
}

type TournamentService struct {
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	clubName       string
	ids            id.Generator
	now            func() time.Time
}

func NewTournamentService(
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	clubName string,
	ids id.Generator,
) *TournamentService {
	return &TournamentService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		clubName:       strings.TrimSpace(clubName),
		ids:            ids,
		now:            time.Now,
	}
}

func (s *TournamentService) List(ctx context.Context, teamID string) ([]tournament.Tournament, error) {
	items, err := s.tournamentRepo.List(ctx, strings.TrimSpace(teamID))
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return items, nil
}

// Active returns the club's primary tournament, the oldest one on record.
func (s *TournamentService) Active(ctx context.Context) (tournament.Tournament, error) {
	item, exists, err := s.tournamentRepo.First(ctx, "")
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get first tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: no tournaments recorded", ErrNotFound)
	}
	return item, nil
}

func (s *TournamentService) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament by id: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}
	return item, nil
}

func (s *TournamentService) Create(ctx context.Context, input CreateTournamentInput) (tournament.Tournament, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.TeamID = strings.TrimSpace(input.TeamID)
	if input.Name == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament name is required", ErrInvalidInput)
	}

	if input.TeamID == "" {
		if s.clubName == "" {
			return tournament.Tournament{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
		}
		club, err := s.teamRepo.Ensure(ctx, s.clubName)
		if err != nil {
			return tournament.Tournament{}, fmt.Errorf("ensure club team: %w", err)
		}
		input.TeamID = club.ID
	} else {
		_, exists, err := s.teamRepo.GetByID(ctx, input.TeamID)
		if err != nil {
			return tournament.Tournament{}, fmt.Errorf("get team by id: %w", err)
		}
		if !exists {
			return tournament.Tournament{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
		}
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("generate tournament id: %w", err)
	}

	created, err := s.tournamentRepo.Create(ctx, tournament.Tournament{
		ID:        newID,
		Name:      input.Name,
		TeamID:    input.TeamID,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, tournament.ErrDuplicateName) {
			return tournament.Tournament{}, fmt.Errorf("%w: tournament %q", ErrConflict, input.Name)
		}
		return tournament.Tournament{}, fmt.Errorf("create tournament: %w", err)
	}

	return created, nil
}
