package bot

import (
	"context"
	"time"

	"github.com/DanRulev/vocamission.git/internal/models"
	"github.com/DanRulev/vocamission.git/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=telegram.go -destination=mock/service_mock.go

type AccountSI interface {
	Login(ctx context.Context, userID int64, email, password string) (models.User, error)
	Register(ctx context.Context, userID int64, email, password string) (models.User, error)
	Logout(ctx context.Context, userID int64) error
	SetWordGoal(ctx context.Context, userID int64, goal int) (models.User, error)
	Dashboard(ctx context.Context, userID int64) (service.Dashboard, error)
}

type QuizSI interface {
	Start(ctx context.Context, userID int64, activity models.ActivityType, forceRetry bool) (models.SessionState, error)
	Answer(ctx context.Context, userID int64, answer models.Answer) (service.Feedback, error)
	Current(ctx context.Context, userID int64) (models.SessionState, error)
	Abandon(ctx context.Context, userID int64) error
	ResetAndRetry(ctx context.Context, userID int64, activity models.ActivityType) (models.SessionState, error)
	ExamReview(ctx context.Context, userID int64) (service.ExamReview, error)
	QuizStats(ctx context.Context, userID int64) (string, error)
	WrongNote(ctx context.Context, userID int64) ([]models.WrongAnswer, error)
}

type StudySI interface {
	StudyWords(ctx context.Context, userID int64, review bool) (models.StudyState, error)
	Listen(ctx context.Context, userID int64, wordID int64, lang models.Language) (service.StudyProgress, error)
}

type AdminSI interface {
	Users(ctx context.Context, userID int64, role models.Role, page int) (models.UserPage, error)
	SetRole(ctx context.Context, userID, targetID int64, role models.Role) (models.User, error)
	SetGoals(ctx context.Context, userID, targetID int64, goals models.Goals) (models.User, error)
}

type ServiceI interface {
	AccountSI
	QuizSI
	StudySI
	AdminSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TelegramAPI struct {
	bot     *tgbotapi.BotAPI
	account *AccountT
	quiz    *QuizT
	study   *StudyT
	log     *zap.Logger
}

func NewTelegramAPI(botToken, env string, timeout time.Duration, service ServiceI, log *zap.Logger) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	if env == "development" {
		bot.Debug = true
	} else {
		bot.Debug = false
	}

	log.Info("authorized on telegram", zap.String("bot", bot.Self.UserName))

	return &TelegramAPI{
		bot:     bot,
		account: NewAccountTAPI(bot, service, timeout, log),
		quiz:    NewQuizTAPI(bot, service, timeout, log),
		study:   NewStudyTAPI(bot, service, timeout, log),
		log:     log,
	}, nil
}

// Start handles updates one by one until ctx is done.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			t.log.Info("telegram updates stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}
