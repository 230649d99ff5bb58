package bot

import (
	"errors"
	"strings"

	"github.com/DanRulev/vocamission.git/internal/client"
	"github.com/DanRulev/vocamission.git/internal/models"
	"github.com/DanRulev/vocamission.git/internal/service"
	"github.com/DanRulev/vocamission.git/pkg/validator"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonStudy     = "📖 오늘의 단어"
	ButtonReview    = "🔁 복습 단어"
	ButtonWordQuiz  = "🧠 단어 퀴즈"
	ButtonOXQuiz    = "⭕ O/X 퀴즈"
	ButtonExam      = "📝 문법 시험"
	ButtonWrongNote = "❗ 오답 노트"
	ButtonToday     = "📊 오늘 현황"
	ButtonStats     = "📈 퀴즈 기록"
	ButtonHelp      = "ℹ️ 도움말"
)

const helpText = `
📚 명령어:
/start — 시작
/help — 도움말
/login 이메일 비밀번호 — 로그인
/signup 이메일 비밀번호 — 회원가입
/logout — 로그아웃
/goal 숫자 — 하루 단어 목표 변경
/stop — 진행 중인 퀴즈 그만두기

👩‍🏫 선생님/관리자:
/users [역할] [페이지] — 사용자 목록
/goals ID 단어목표 시험목표 — 목표 변경
/role ID 역할 — 역할 변경 (관리자)

🎯 하루 순서: 단어 학습 → 단어 퀴즈 → 문법 시험
퀴즈는 80% 이상 맞히면 통과입니다.
`

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("command without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "login":
		t.account.login(message, false)
	case "signup":
		t.account.login(message, true)
	case "logout":
		t.account.logout(message)
	case "goal":
		t.account.setWordGoal(message)
	case "today":
		t.account.sendDashboard(message.Chat.ID, message.From.ID)
	case "stop":
		t.quiz.abandon(message)
	case "users":
		t.account.listUsers(message)
	case "role":
		t.account.setRole(message)
	case "goals":
		t.account.setGoals(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "알 수 없는 명령어입니다. /help 를 확인하세요.")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 안녕하세요! 영어 단어 학습 봇입니다.\n\n" +
		"✨ 할 수 있는 것:\n" +
		"• 📖 오늘의 단어 듣고 외우기\n" +
		"• 🧠 단어 퀴즈와 ⭕ O/X 퀴즈\n" +
		"• 📝 문법 시험\n" +
		"• ❗ 틀린 문제 다시 보기\n\n" +
		"먼저 /login 이메일 비밀번호 로 로그인하세요."

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) showMainMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "🏠 메인 메뉴:")
	msg.ReplyMarkup = generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonStudy),
			tgbotapi.NewKeyboardButton(ButtonReview),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonWordQuiz),
			tgbotapi.NewKeyboardButton(ButtonOXQuiz),
			tgbotapi.NewKeyboardButton(ButtonExam),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonToday),
			tgbotapi.NewKeyboardButton(ButtonWrongNote),
			tgbotapi.NewKeyboardButton(ButtonStats),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	userID := message.From.ID
	chatID := message.Chat.ID

	switch message.Text {
	case ButtonStudy:
		t.study.sendStudy(chatID, userID, false)
	case ButtonReview:
		t.study.sendStudy(chatID, userID, true)
	case ButtonWordQuiz:
		t.quiz.start(chatID, userID, models.ActivityWordQuiz)
	case ButtonOXQuiz:
		t.quiz.start(chatID, userID, models.ActivityOXQuiz)
	case ButtonExam:
		t.quiz.start(chatID, userID, models.ActivityExamQuiz)
	case ButtonWrongNote:
		t.quiz.sendWrongNote(chatID, userID)
	case ButtonStats:
		t.quiz.sendQuizStats(chatID, userID)
	case ButtonToday:
		t.account.sendDashboard(chatID, userID)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		if t.quiz.answerText(message) {
			return
		}
		msg := tgbotapi.NewMessage(chatID, "이해하지 못했어요. 아래 버튼을 사용하세요.")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	if query.Message == nil || query.From == nil {
		t.log.Warn("callback without message", zap.String("callback_id", query.ID))
		return
	}

	data := query.Data

	switch {
	case strings.HasPrefix(data, prefixListen):
		t.study.handleListen(query)
	case strings.HasPrefix(data, prefixMC),
		strings.HasPrefix(data, prefixOX),
		strings.HasPrefix(data, prefixExam):
		t.quiz.handleAnswer(query)
	case strings.HasPrefix(data, prefixStart),
		strings.HasPrefix(data, prefixRetry),
		strings.HasPrefix(data, prefixRetryOK),
		data == dataExamReview:
		t.quiz.handleQuizCallbackQuery(query)
	case data == dataMainMenu:
		t.showMainMenu(query.Message.Chat.ID)
	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("user_id", query.From.ID))
	}
}

// userError turns a service error into the text shown to the user.
func userError(err error) string {
	var apiErr *client.APIError

	switch {
	case errors.Is(err, service.ErrNotLinked):
		return "🔑 먼저 /login 이메일 비밀번호 로 로그인하세요."
	case errors.Is(err, service.ErrSessionExpired):
		return "🔑 로그인이 만료되었습니다. /login 으로 다시 로그인하세요."
	case errors.Is(err, service.ErrForbidden):
		return "⛔ 권한이 없습니다."
	case errors.Is(err, service.ErrNoSession):
		return "ℹ️ 진행 중인 활동이 없습니다."
	case errors.Is(err, service.ErrSessionClosed):
		return "⏳ 이미 제출된 퀴즈입니다."
	case errors.Is(err, service.ErrInvalidAnswer), errors.Is(err, service.ErrWrongAnswerKind):
		return "⚠️ 보기 중에서 답을 골라주세요."
	case errors.Is(err, service.ErrUnknownWord):
		return "⚠️ 오늘의 단어 목록을 다시 불러오세요."
	case errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500:
		return "⚠️ " + apiErr.Message
	case errors.Is(err, validator.ErrInvalid):
		return "⚠️ 입력값을 확인하세요."
	}
	return "❌ 오류가 발생했습니다. 잠시 후 다시 시도하세요."
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}
