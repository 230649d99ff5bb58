package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/DanRulev/vocamission.git/internal/models"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go

var (
	ErrNotLinked       = errors.New("telegram user is not linked to an account")
	ErrSessionExpired  = errors.New("session expired, log in again")
	ErrNoSession       = errors.New("no active session")
	ErrSessionClosed   = errors.New("session no longer accepts answers")
	ErrWrongAnswerKind = errors.New("answer does not fit the question")
	ErrInvalidAnswer   = errors.New("answer is not one of the options")
	ErrForbidden       = errors.New("not allowed for this role")
	ErrUnknownWord     = errors.New("word is not in today's list")
)

type AuthAPII interface {
	Login(ctx context.Context, email, password string) (models.TokenResponse, error)
	Register(ctx context.Context, email, password string) (models.User, error)
	Me(ctx context.Context, token string) (models.User, error)
	UpdateMe(ctx context.Context, token string, update models.UserUpdate) (models.User, error)
}

type ActivityAPII interface {
	TodayStatus(ctx context.Context, token string) (models.TodayActivityStatus, error)
	CompletionStatus(ctx context.Context, token string, activity models.ActivityType) (models.CompletionStatus, error)
	MarkStudyCompleted(ctx context.Context, token string) (models.DailyActivityLog, error)
	ResetCompletion(ctx context.Context, token string, activity models.ActivityType) error
}

type WordAPII interface {
	TodayWords(ctx context.Context, token string, review bool) ([]models.Word, error)
	RecordListen(ctx context.Context, token string, wordID int64, lang models.Language) error
}

type QuizAPII interface {
	MultipleChoiceSet(ctx context.Context, token string, count int) ([]models.MultipleChoiceQuiz, error)
	OXSet(ctx context.Context, token string, count int) ([]models.OXQuiz, error)
	SubmitQuizDetails(ctx context.Context, token string, submission models.QuizSubmission) error
	WrongAnswers(ctx context.Context, token string, limit int) ([]models.WrongAnswer, error)
}

type ExamAPII interface {
	DailyExamSet(ctx context.Context, token string) ([]models.ExamQuestion, error)
	SubmitExam(ctx context.Context, token string, submission models.ExamSubmission) error
	TodayExamAttempts(ctx context.Context, token string) ([]models.UserGrammarAttempt, error)
}

type AdminAPII interface {
	Users(ctx context.Context, token string, role models.Role, skip, limit int) (models.UserPage, error)
	UpdateUserRole(ctx context.Context, token string, userID int64, role models.Role) (models.User, error)
	UpdateUserGoals(ctx context.Context, token string, userID int64, goals models.Goals) (models.User, error)
}

type DictionaryAPII interface {
	Lookup(ctx context.Context, word string) (models.DictionaryEntry, error)
}

type APII interface {
	AuthAPII
	ActivityAPII
	WordAPII
	QuizAPII
	ExamAPII
	AdminAPII
	DictionaryAPII
}

type AccountRI interface {
	SaveAccount(ctx context.Context, account models.Account) error
	Account(ctx context.Context, userID int64) (models.Account, error)
	ClearToken(ctx context.Context, userID int64) error
	UpdateRole(ctx context.Context, userID int64, role models.Role) error
}

type ResultRI interface {
	AddResult(ctx context.Context, result models.ResultRecord) error
	DeleteResultsSince(ctx context.Context, userID int64, activity models.ActivityType, since time.Time) error
	QuizStats(ctx context.Context, userID int64) (models.QuizStats, error)
	RecentResults(ctx context.Context, userID int64, limit int) ([]models.ResultRecord, error)
}

type RepositoryI interface {
	AccountRI
	ResultRI
}

// SessionStoreI keeps per-user snapshots between bot updates.
type SessionStoreI interface {
	SetSession(ctx context.Context, userID int64, state models.SessionState) error
	GetSession(ctx context.Context, userID int64) (models.SessionState, bool, error)
	DeleteSession(ctx context.Context, userID int64) error
	SetStudy(ctx context.Context, userID int64, state models.StudyState) error
	GetStudy(ctx context.Context, userID int64) (models.StudyState, bool, error)
	DeleteStudy(ctx context.Context, userID int64) error
	GrantRetry(ctx context.Context, userID int64, activity models.ActivityType) error
	TakeRetry(ctx context.Context, userID int64, activity models.ActivityType) (bool, error)
}

type Service struct {
	*AccountS
	*StatusS
	*QuizS
	*StudyS
	*DashboardS
	*ReviewS
	*AdminS
}

func InitServices(api APII, repo RepositoryI, store SessionStoreI, log *zap.Logger) *Service {
	locks := newUserLocks()
	account := NewAccountService(api, repo, store, log)
	status := NewStatusService(api, log)

	return &Service{
		AccountS:   account,
		StatusS:    status,
		QuizS:      NewQuizService(api, status, account, repo, store, locks, log),
		StudyS:     NewStudyService(api, api, status, account, store, locks, log),
		DashboardS: NewDashboardService(status, account),
		ReviewS:    NewReviewService(api, account, log),
		AdminS:     NewAdminService(api, account, log),
	}
}

// userLocks serializes operations of one user; different users run freely.
type userLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[int64]*sync.Mutex)}
}

func (l *userLocks) lock(userID int64) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
