package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/lamberpool/matchday/internal/domain/team"
	"github.com/lamberpool/matchday/internal/domain/tournament"
	teammock "github.com/lamberpool/matchday/internal/mocks/domain/team"
	tournamentmock "github.com/lamberpool/matchday/internal/mocks/domain/tournament"
	"github.com/lamberpool/matchday/internal/platform/id"
)

func TestTournamentService_Create_DefaultsToClubTeamUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tournamentRepo := tournamentmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewTournamentService(tournamentRepo, teamRepo, "Lamberpool FC", id.NewSequence("trn"))

	teamRepo.
		On("Ensure", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "Lamberpool FC").
		Return(team.Team{ID: "team-lamberpool", Name: "Lamberpool FC"}, nil).
		Once()
	tournamentRepo.
		On("Create", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), mock.MatchedBy(func(v tournament.Tournament) bool {
			return v.Name == "Sunday League" && v.TeamID == "team-lamberpool" && v.ID != ""
		})).
		Return(tournament.Tournament{ID: "trn-1", Name: "Sunday League", TeamID: "team-lamberpool"}, nil).
		Once()

	got, err := service.Create(ctx, CreateTournamentInput{Name: "  Sunday League  "})
	if err != nil {
		t.Fatalf("create tournament: %v", err)
	}
	if got.ID != "trn-1" {
		t.Fatalf("unexpected tournament id: %s", got.ID)
	}
}

func TestTournamentService_Create_UnknownTeamUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tournamentRepo := tournamentmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewTournamentService(tournamentRepo, teamRepo, "Lamberpool FC", id.NewSequence("trn"))

	teamRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "team-missing").
		Return(team.Team{}, false, nil).
		Once()

	_, err := service.Create(ctx, CreateTournamentInput{Name: "Sunday League", TeamID: "team-missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTournamentService_Active_EmptyUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tournamentRepo := tournamentmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewTournamentService(tournamentRepo, teamRepo, "Lamberpool FC", id.NewSequence("trn"))

	tournamentRepo.
		On("First", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "").
		Return(tournament.Tournament{}, false, nil).
		Once()

	_, err := service.Active(ctx)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
