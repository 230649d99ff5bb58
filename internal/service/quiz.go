package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/vocamission.git/internal/client"
	"github.com/DanRulev/vocamission.git/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	QuizLength    = 10
	recentResults = 5
)

// WarnNotRecorded is shown with locally computed results when the backend
// did not confirm the submission.
const WarnNotRecorded = "결과가 서버에 기록되지 않았을 수 있습니다."

// Feedback describes the outcome of one accepted answer.
type Feedback struct {
	Attempt  models.QuizAttempt
	Question models.Question
	Number   int
	Total    int
	Finished bool
	State    models.SessionState
}

// ExamReview is today's stored exam attempts with their aggregate.
type ExamReview struct {
	Attempts []models.QuizAttempt
	Result   models.Result
}

type QuizS struct {
	quiz     QuizAPII
	exam     ExamAPII
	activity ActivityAPII
	status   *StatusS
	account  *AccountS
	repo     ResultRI
	store    SessionStoreI
	locks    *userLocks
	log      *zap.Logger
	now      func() time.Time
}

func NewQuizService(api APII, status *StatusS, account *AccountS, repo ResultRI, store SessionStoreI, locks *userLocks, log *zap.Logger) *QuizS {
	return &QuizS{
		quiz:     api,
		exam:     api,
		activity: api,
		status:   status,
		account:  account,
		repo:     repo,
		store:    store,
		locks:    locks,
		log:      log,
		now:      time.Now,
	}
}

// Start opens a quiz session for the activity. Sessions that cannot run end
// in a terminal phase (already_completed, locked, unavailable) without being
// stored. A completed activity is only reopened when forceRetry is set and a
// retry grant from a successful reset is still pending.
func (q *QuizS) Start(ctx context.Context, userID int64, activity models.ActivityType, forceRetry bool) (models.SessionState, error) {
	unlock := q.locks.lock(userID)
	defer unlock()

	return q.start(ctx, userID, activity, forceRetry)
}

func (q *QuizS) start(ctx context.Context, userID int64, activity models.ActivityType, forceRetry bool) (models.SessionState, error) {
	kind, err := models.KindOf(activity)
	if err != nil {
		return models.SessionState{}, err
	}

	token, err := q.account.Token(ctx, userID)
	if err != nil {
		return models.SessionState{}, err
	}

	if err := q.store.DeleteSession(ctx, userID); err != nil {
		q.log.Warn("failed to drop previous session", zap.Int64("user_id", userID), zap.Error(err))
	}

	snap, err := q.status.Snapshot(ctx, token, activity)
	if err != nil {
		return models.SessionState{}, q.account.authErr(ctx, userID, err)
	}

	retry := false
	if forceRetry {
		retry, err = q.store.TakeRetry(ctx, userID, activity)
		if err != nil {
			return models.SessionState{}, fmt.Errorf("failed to read retry grant: %w", err)
		}
	}

	state := models.SessionState{
		ID:        uuid.NewString(),
		UserID:    userID,
		Activity:  activity,
		Retry:     retry,
		StartedAt: q.now(),
	}

	switch Gate(snap, activity, retry) {
	case GateCompleted:
		state.Phase = models.PhaseAlreadyCompleted
		return state, nil
	case GateLocked:
		state.Phase = models.PhaseLocked
		return state, nil
	}

	questions, err := q.fetch(ctx, token, kind)
	if err != nil {
		q.log.Error("failed to load quiz set", zap.Int64("user_id", userID), zap.String("activity", string(activity)), zap.Error(err))
		return models.SessionState{}, q.account.authErr(ctx, userID, err)
	}

	if len(questions) == 0 {
		state.Phase = models.PhaseUnavailable
		return state, nil
	}

	state.Phase = models.PhaseAnswering
	state.Questions = questions
	state.Attempts = make([]models.QuizAttempt, 0, len(questions))

	if err := q.store.SetSession(ctx, userID, state); err != nil {
		return models.SessionState{}, fmt.Errorf("failed to save session: %w", err)
	}

	q.log.Info("quiz session started",
		zap.Int64("user_id", userID),
		zap.String("session_id", state.ID),
		zap.String("activity", string(activity)),
		zap.Int("questions", len(questions)),
		zap.Bool("retry", retry),
	)
	return state, nil
}

// fetch loads one whole quiz set. A 404 means there is nothing to quiz on.
func (q *QuizS) fetch(ctx context.Context, token string, kind models.QuizKind) ([]models.Question, error) {
	var questions []models.Question

	switch kind {
	case models.KindWordQuiz:
		set, err := q.quiz.MultipleChoiceSet(ctx, token, QuizLength)
		if err != nil {
			return notFoundAsEmpty(questions, err)
		}
		for i := range set {
			questions = append(questions, models.Question{Kind: kind, MC: &set[i]})
		}
	case models.KindOXQuiz:
		set, err := q.quiz.OXSet(ctx, token, QuizLength)
		if err != nil {
			return notFoundAsEmpty(questions, err)
		}
		for i := range set {
			questions = append(questions, models.Question{Kind: kind, OX: &set[i]})
		}
	case models.KindExam:
		set, err := q.exam.DailyExamSet(ctx, token)
		if err != nil {
			return notFoundAsEmpty(questions, err)
		}
		for i := range set {
			if err := set[i].Validate(); err != nil {
				q.log.Warn("skipping exam question", zap.Error(err))
				continue
			}
			questions = append(questions, models.Question{Kind: kind, Exam: &set[i]})
		}
	}

	return questions, nil
}

func notFoundAsEmpty(questions []models.Question, err error) ([]models.Question, error) {
	if errors.Is(err, client.ErrNotFound) {
		return questions, nil
	}
	return nil, err
}

// Answer grades the live question and advances the session. The answer that
// completes the set also submits the results; rejected answers leave the
// session untouched.
func (q *QuizS) Answer(ctx context.Context, userID int64, answer models.Answer) (Feedback, error) {
	unlock := q.locks.lock(userID)
	defer unlock()

	state, ok, err := q.store.GetSession(ctx, userID)
	if err != nil {
		return Feedback{}, fmt.Errorf("failed to load session: %w", err)
	}
	if !ok {
		return Feedback{}, ErrNoSession
	}

	question, live := state.Live()
	if !live {
		return Feedback{}, ErrSessionClosed
	}

	attempt, err := Grade(question, answer)
	if err != nil {
		return Feedback{}, err
	}

	state.Attempts = append(state.Attempts, attempt)
	state.Index++

	fb := Feedback{
		Attempt:  attempt,
		Question: question,
		Number:   state.Index,
		Total:    len(state.Questions),
	}

	if state.Index < len(state.Questions) {
		if err := q.store.SetSession(ctx, userID, state); err != nil {
			return Feedback{}, fmt.Errorf("failed to save session: %w", err)
		}
		fb.State = state
		return fb, nil
	}

	state.Phase = models.PhaseProcessing
	if err := q.store.SetSession(ctx, userID, state); err != nil {
		q.log.Warn("failed to save processing session", zap.Int64("user_id", userID), zap.Error(err))
	}

	q.finish(ctx, &state)

	if err := q.store.SetSession(ctx, userID, state); err != nil {
		q.log.Warn("failed to save finished session", zap.Int64("user_id", userID), zap.Error(err))
	}

	fb.Finished = true
	fb.State = state
	return fb, nil
}

// finish aggregates the attempts and submits them once. A failed submission
// still yields the local result, with a warning.
func (q *QuizS) finish(ctx context.Context, state *models.SessionState) {
	res := Aggregate(state.Attempts)
	state.Result = &res

	err := q.submit(ctx, *state)
	if err != nil {
		state.Warning = WarnNotRecorded
		q.log.Warn("failed to submit quiz results",
			zap.Int64("user_id", state.UserID),
			zap.String("session_id", state.ID),
			zap.Error(err),
		)
	}

	record := models.ResultRecord{
		UserID:       state.UserID,
		ActivityType: state.Activity,
		Total:        res.Total,
		Correct:      res.Correct,
		Passed:       res.Passed,
		Synced:       err == nil,
		CreatedAt:    q.now(),
	}
	if err := q.repo.AddResult(ctx, record); err != nil {
		q.log.Warn("failed to log quiz result", zap.Int64("user_id", state.UserID), zap.Error(err))
	}

	state.Phase = models.PhaseFinished

	q.log.Info("quiz session finished",
		zap.Int64("user_id", state.UserID),
		zap.String("session_id", state.ID),
		zap.Int("total", res.Total),
		zap.Int("correct", res.Correct),
		zap.Bool("passed", res.Passed),
	)
}

func (q *QuizS) submit(ctx context.Context, state models.SessionState) error {
	token, err := q.account.Token(ctx, state.UserID)
	if err != nil {
		return err
	}

	if state.Activity == models.ActivityExamQuiz {
		err = q.exam.SubmitExam(ctx, token, BuildExamSubmission(state.Attempts))
	} else {
		err = q.quiz.SubmitQuizDetails(ctx, token, BuildSubmission(state.Activity, state.Attempts))
	}
	if err != nil {
		return q.account.authErr(ctx, state.UserID, err)
	}
	return nil
}

func (q *QuizS) Current(ctx context.Context, userID int64) (models.SessionState, error) {
	state, ok, err := q.store.GetSession(ctx, userID)
	if err != nil {
		return models.SessionState{}, err
	}
	if !ok {
		return models.SessionState{}, ErrNoSession
	}
	return state, nil
}

// Abandon discards the session; nothing is submitted.
func (q *QuizS) Abandon(ctx context.Context, userID int64) error {
	unlock := q.locks.lock(userID)
	defer unlock()

	return q.store.DeleteSession(ctx, userID)
}

// ResetAndRetry deletes today's completion record on the server and, once
// that succeeded, opens a new session that may bypass the completed state.
func (q *QuizS) ResetAndRetry(ctx context.Context, userID int64, activity models.ActivityType) (models.SessionState, error) {
	unlock := q.locks.lock(userID)
	defer unlock()

	if _, err := models.KindOf(activity); err != nil {
		return models.SessionState{}, err
	}

	token, err := q.account.Token(ctx, userID)
	if err != nil {
		return models.SessionState{}, err
	}

	if err := q.activity.ResetCompletion(ctx, token, activity); err != nil {
		return models.SessionState{}, q.account.authErr(ctx, userID, fmt.Errorf("failed to reset completion: %w", err))
	}

	if err := q.store.DeleteSession(ctx, userID); err != nil {
		q.log.Warn("failed to drop cached session", zap.Int64("user_id", userID), zap.Error(err))
	}
	if err := q.repo.DeleteResultsSince(ctx, userID, activity, startOfDay(q.now())); err != nil {
		q.log.Warn("failed to drop today's local results", zap.Int64("user_id", userID), zap.Error(err))
	}
	if err := q.store.GrantRetry(ctx, userID, activity); err != nil {
		return models.SessionState{}, fmt.Errorf("failed to grant retry: %w", err)
	}

	q.log.Info("completion reset", zap.Int64("user_id", userID), zap.String("activity", string(activity)))

	return q.start(ctx, userID, activity, true)
}

// ExamReview aggregates the exam attempts the server stored today.
func (q *QuizS) ExamReview(ctx context.Context, userID int64) (ExamReview, error) {
	token, err := q.account.Token(ctx, userID)
	if err != nil {
		return ExamReview{}, err
	}

	stored, err := q.exam.TodayExamAttempts(ctx, token)
	if err != nil && !errors.Is(err, client.ErrNotFound) {
		return ExamReview{}, q.account.authErr(ctx, userID, err)
	}

	attempts := ExamAttempts(stored)
	return ExamReview{Attempts: attempts, Result: Aggregate(attempts)}, nil
}

func (q *QuizS) QuizStats(ctx context.Context, userID int64) (string, error) {
	stats, err := q.repo.QuizStats(ctx, userID)
	if err != nil {
		q.log.Warn("failed to get quiz stats", zap.Int64("user_id", userID), zap.Error(err))
		return "", err
	}

	recent, err := q.repo.RecentResults(ctx, userID, recentResults)
	if err != nil {
		q.log.Warn("failed to get recent results", zap.Int64("user_id", userID), zap.Error(err))
		recent = nil
	}

	return quizStatsFormat(stats, recent), nil
}

func quizStatsFormat(stats models.QuizStats, recent []models.ResultRecord) string {
	var sb strings.Builder

	sb.WriteString("📚 *전체 응시*: ")
	sb.WriteString(strconv.Itoa(stats.TotalCount))
	sb.WriteString("\n")

	sb.WriteString("✅ *통과*: ")
	sb.WriteString(strconv.Itoa(stats.RightCount))
	sb.WriteString("\n")

	sb.WriteString("❌ *미통과*: ")
	sb.WriteString(strconv.Itoa(stats.WrongCount))

	if len(recent) > 0 {
		sb.WriteString("\n\n*최근 기록*")
		for _, r := range recent {
			sb.WriteString("\n")
			sb.WriteString(r.CreatedAt.Format("01-02 15:04"))
			sb.WriteString(" ")
			sb.WriteString(r.ActivityType.Label())
			sb.WriteString(" ")
			sb.WriteString(strconv.Itoa(r.Correct))
			sb.WriteString("/")
			sb.WriteString(strconv.Itoa(r.Total))
			if !r.Synced {
				sb.WriteString(" ⚠️")
			}
		}
	}

	return sb.String()
}
