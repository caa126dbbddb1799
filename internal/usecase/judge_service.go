package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lamberpool/matchday/internal/domain/judge"
	"github.com/lamberpool/matchday/internal/domain/match"
	"github.com/lamberpool/matchday/internal/platform/id"
)

type JudgeService struct {
	judgeRepo      judge.Repository
	guestJudgeRepo judge.GuestRepository
	matchRepo      match.Repository
	ids            id.Generator
	now            func() time.Time
}

func NewJudgeService(
	judgeRepo judge.Repository,
	guestJudgeRepo judge.GuestRepository,
	matchRepo match.Repository,
	ids id.Generator,
) *JudgeService {
	return &JudgeService{
		judgeRepo:      judgeRepo,
		guestJudgeRepo: guestJudgeRepo,
		matchRepo:      matchRepo,
		ids:            ids,
		now:            time.Now,
	}
}

func (s *JudgeService) List(ctx context.Context) ([]judge.Judge, error) {
	items, err := s.judgeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list judges: %w", err)
	}
	return items, nil
}

func (s *JudgeService) Create(ctx context.Context, name string) (judge.Judge, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return judge.Judge{}, fmt.Errorf("%w: judge name is required", ErrInvalidInput)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return judge.Judge{}, fmt.Errorf("generate judge id: %w", err)
	}

	created, err := s.judgeRepo.Create(ctx, judge.Judge{
		ID:        newID,
		Name:      name,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, judge.ErrDuplicateName) {
			return judge.Judge{}, fmt.Errorf("%w: judge %q", ErrConflict, name)
		}
		return judge.Judge{}, fmt.Errorf("create judge: %w", err)
	}

	return created, nil
}

func (s *JudgeService) ListGuestsByMatch(ctx context.Context, matchID string) ([]judge.GuestJudge, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	if err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}

	items, err := s.guestJudgeRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list guest judges: %w", err)
	}
	return items, nil
}

func (s *JudgeService) CreateGuest(ctx context.Context, matchID, name string) (judge.GuestJudge, error) {
	matchID = strings.TrimSpace(matchID)
	name = strings.TrimSpace(name)
	if matchID == "" {
		return judge.GuestJudge{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if name == "" {
		return judge.GuestJudge{}, fmt.Errorf("%w: guest judge name is required", ErrInvalidInput)
	}

	if err := s.requireMatch(ctx, matchID); err != nil {
		return judge.GuestJudge{}, err
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return judge.GuestJudge{}, fmt.Errorf("generate guest judge id: %w", err)
	}

	created, err := s.guestJudgeRepo.Create(ctx, judge.GuestJudge{
		ID:        newID,
		MatchID:   matchID,
		Name:      name,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return judge.GuestJudge{}, fmt.Errorf("create guest judge: %w", err)
	}

	return created, nil
}

// DeleteGuest removes the guest judge together with its submitted ratings.
func (s *JudgeService) DeleteGuest(ctx context.Context, guestJudgeID string) error {
	guestJudgeID = strings.TrimSpace(guestJudgeID)
	if guestJudgeID == "" {
		return fmt.Errorf("%w: guest judge id is required", ErrInvalidInput)
	}

	_, exists, err := s.guestJudgeRepo.GetByID(ctx, guestJudgeID)
	if err != nil {
		return fmt.Errorf("get guest judge by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: guest judge=%s", ErrNotFound, guestJudgeID)
	}

	if err := s.guestJudgeRepo.Delete(ctx, guestJudgeID); err != nil {
		return fmt.Errorf("delete guest judge: %w", err)
	}
	return nil
}

func (s *JudgeService) requireMatch(ctx context.Context, matchID string) error {
	_, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return nil
}
