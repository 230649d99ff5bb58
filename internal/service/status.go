package service

import (
	"context"
	"errors"

	"github.com/DanRulev/vocamission.git/internal/client"
	"github.com/DanRulev/vocamission.git/internal/models"
	"go.uber.org/zap"
)

// Snapshot is a point-in-time view of today's completion flags. Flags that
// could not be read are false and listed in Stale.
type Snapshot struct {
	Done  map[models.ActivityType]bool
	Stale map[models.ActivityType]bool
}

// Degraded reports whether any flag is a fallback rather than server data.
func (s Snapshot) Degraded() bool {
	return len(s.Stale) > 0
}

type StatusS struct {
	api ActivityAPII
	log *zap.Logger
}

func NewStatusService(api ActivityAPII, log *zap.Logger) *StatusS {
	return &StatusS{api: api, log: log}
}

// TodayStatus always returns a full record. Errors other than 401 degrade to
// all-false; a 401 is returned so the caller can ask for a new login.
func (s *StatusS) TodayStatus(ctx context.Context, token string) (models.TodayActivityStatus, error) {
	status, _, err := s.todayStatus(ctx, token)
	return status, err
}

func (s *StatusS) todayStatus(ctx context.Context, token string) (models.TodayActivityStatus, bool, error) {
	status, err := s.api.TodayStatus(ctx, token)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return models.TodayActivityStatus{}, false, err
		}
		s.log.Warn("today status unavailable, assuming nothing completed", zap.Error(err))
		return models.TodayActivityStatus{}, true, nil
	}
	return status, false, nil
}

// CompletedToday reads the completion flag of a single activity with the
// same degradation rule as TodayStatus.
func (s *StatusS) CompletedToday(ctx context.Context, token string, activity models.ActivityType) (bool, error) {
	done, _, err := s.completedToday(ctx, token, activity)
	return done, err
}

func (s *StatusS) completedToday(ctx context.Context, token string, activity models.ActivityType) (bool, bool, error) {
	status, err := s.api.CompletionStatus(ctx, token, activity)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return false, false, err
		}
		s.log.Warn("completion status unavailable", zap.String("activity", string(activity)), zap.Error(err))
		return false, true, nil
	}
	return status.CompletedToday, false, nil
}

// Snapshot collects the flags of the given activities. The today-status
// record covers study, word quiz and exam; others are asked one by one.
func (s *StatusS) Snapshot(ctx context.Context, token string, activities ...models.ActivityType) (Snapshot, error) {
	status, stale, err := s.todayStatus(ctx, token)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Done: map[models.ActivityType]bool{
			models.ActivityWordStudy: status.WordStudy,
			models.ActivityWordQuiz:  status.WordQuiz,
			models.ActivityExamQuiz:  status.ExamQuiz,
		},
		Stale: make(map[models.ActivityType]bool),
	}
	if stale {
		for a := range snap.Done {
			snap.Stale[a] = true
		}
	}

	for _, activity := range activities {
		if _, ok := snap.Done[activity]; ok || activity == "" {
			continue
		}
		done, stale, err := s.completedToday(ctx, token, activity)
		if err != nil {
			return Snapshot{}, err
		}
		snap.Done[activity] = done
		if stale {
			snap.Stale[activity] = true
		}
	}
	return snap, nil
}
