package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/lamberpool/matchday/internal/domain/competition"
	"github.com/lamberpool/matchday/internal/domain/season"
	"github.com/lamberpool/matchday/internal/domain/tournament"
	"github.com/lamberpool/matchday/internal/platform/cache"
)

const (
	filterOptionsCacheKey = "filters:options"
	filterOptionsCacheTTL = 30 * time.Second
)

type TournamentOption struct {
	ID   string
	Name string
}

type CompetitionOption struct {
	ID   string
	Name string
	// FullName is the display label "<tournament> <year> - <name>".
	FullName string
}

// FilterOptions is the set of distinct values the UI offers for narrowing
// match listings.
type FilterOptions struct {
	Years        []int
	Tournaments  []TournamentOption
	Competitions []CompetitionOption
}

type FilterService struct {
	tournamentRepo  tournament.Repository
	seasonRepo      season.Repository
	competitionRepo competition.Repository
	options         *cache.Store
}

func NewFilterService(
	tournamentRepo tournament.Repository,
	seasonRepo season.Repository,
	competitionRepo competition.Repository,
) *FilterService {
	return &FilterService{
		tournamentRepo:  tournamentRepo,
		seasonRepo:      seasonRepo,
		competitionRepo: competitionRepo,
		options:         cache.NewStore(filterOptionsCacheTTL),
	}
}

// Options is cached briefly; concurrent cold reads share one load.
func (s *FilterService) Options(ctx context.Context) (FilterOptions, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FilterService.Options")
	defer span.End()

	value, err := s.options.GetOrLoad(ctx, filterOptionsCacheKey, func(ctx context.Context) (any, error) {
		return s.buildOptions(ctx)
	})
	if err != nil {
		return FilterOptions{}, err
	}

	opts, ok := value.(FilterOptions)
	if !ok {
		return FilterOptions{}, fmt.Errorf("unexpected cached filter options type %T", value)
	}
	return opts, nil
}

// Invalidate drops the cached options after a hierarchy write.
func (s *FilterService) Invalidate(ctx context.Context) {
	s.options.Delete(ctx, filterOptionsCacheKey)
}

func (s *FilterService) buildOptions(ctx context.Context) (FilterOptions, error) {
	tournaments, err := s.tournamentRepo.List(ctx, "")
	if err != nil {
		return FilterOptions{}, fmt.Errorf("list tournaments for filters: %w", err)
	}
	seasons, err := s.seasonRepo.ListAll(ctx)
	if err != nil {
		return FilterOptions{}, fmt.Errorf("list seasons for filters: %w", err)
	}

	tournamentNames := make(map[string]string, len(tournaments))
	opts := FilterOptions{
		Years:        make([]int, 0, len(seasons)),
		Tournaments:  make([]TournamentOption, 0, len(tournaments)),
		Competitions: make([]CompetitionOption, 0),
	}

	for _, t := range tournaments {
		tournamentNames[t.ID] = t.Name
		opts.Tournaments = append(opts.Tournaments, TournamentOption{ID: t.ID, Name: t.Name})
	}

	seenYears := make(map[int]struct{}, len(seasons))
	for _, sn := range seasons {
		if _, ok := seenYears[sn.Year]; !ok {
			seenYears[sn.Year] = struct{}{}
			opts.Years = append(opts.Years, sn.Year)
		}

		competitions, err := s.competitionRepo.ListBySeason(ctx, sn.ID)
		if err != nil {
			return FilterOptions{}, fmt.Errorf("list competitions for filters: %w", err)
		}
		for _, c := range competitions {
			opts.Competitions = append(opts.Competitions, CompetitionOption{
				ID:       c.ID,
				Name:     c.Name,
				FullName: fmt.Sprintf("%s %d - %s", tournamentNames[sn.TournamentID], sn.Year, c.Name),
			})
		}
	}

	return opts, nil
}
