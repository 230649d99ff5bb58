package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/vocamission.git/internal/models"
	"github.com/DanRulev/vocamission.git/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const staleStatusNote = "⚠️ 완료 현황을 불러오지 못했습니다. 표시가 최신이 아닐 수 있어요."

type AccountSAdmin interface {
	AccountSI
	AdminSI
}

type AccountT struct {
	bot     BotSender
	service AccountSAdmin
	timeout time.Duration
	log     *zap.Logger
}

func NewAccountTAPI(bot BotSender, service AccountSAdmin, timeout time.Duration, log *zap.Logger) *AccountT {
	return &AccountT{
		bot:     bot,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (t *AccountT) send(msg tgbotapi.Chattable) {
	sendMessage(t.bot, t.log, msg)
}

func (t *AccountT) reply(chatID int64, text string) {
	t.send(tgbotapi.NewMessage(chatID, text))
}

// login handles /login and /signup. The message holds a password, so it is
// removed from the chat first.
func (t *AccountT) login(message *tgbotapi.Message, signup bool) {
	chatID := message.Chat.ID
	userID := message.From.ID

	if _, err := t.bot.Request(tgbotapi.NewDeleteMessage(chatID, message.MessageID)); err != nil {
		t.log.Debug("failed to delete credentials message", zap.Error(err))
	}

	args := strings.Fields(message.CommandArguments())
	if len(args) != 2 {
		t.reply(chatID, "사용법: /"+message.Command()+" 이메일 비밀번호")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	var (
		user models.User
		err  error
	)
	if signup {
		user, err = t.service.Register(ctx, userID, args[0], args[1])
	} else {
		user, err = t.service.Login(ctx, userID, args[0], args[1])
	}
	if err != nil {
		t.log.Info("login failed", zap.Int64("user_id", userID), zap.Bool("signup", signup), zap.Error(err))
		t.reply(chatID, userError(err))
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("👋 %s 님, 환영합니다! (%s)", user.Email, roleLabel(user.Role)))
	msg.ReplyMarkup = generateMenuKeyboard()
	t.send(msg)
}

func (t *AccountT) logout(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	if err := t.service.Logout(ctx, message.From.ID); err != nil {
		t.log.Warn("logout failed", zap.Int64("user_id", message.From.ID), zap.Error(err))
		t.reply(message.Chat.ID, userError(err))
		return
	}
	t.reply(message.Chat.ID, "👋 로그아웃했습니다.")
}

func (t *AccountT) setWordGoal(message *tgbotapi.Message) {
	goal, err := strconv.Atoi(strings.TrimSpace(message.CommandArguments()))
	if err != nil {
		t.reply(message.Chat.ID, "사용법: /goal 숫자")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	user, err := t.service.SetWordGoal(ctx, message.From.ID, goal)
	if err != nil {
		t.reply(message.Chat.ID, userError(err))
		return
	}
	t.reply(message.Chat.ID, fmt.Sprintf("🎯 하루 단어 목표: %d개", user.DailyWordGoal))
}

func roleLabel(r models.Role) string {
	switch r {
	case models.RoleStudent:
		return "학생"
	case models.RoleTeacher:
		return "선생님"
	case models.RoleAdmin:
		return "관리자"
	}
	return string(r)
}

func gateMark(g service.GateState) string {
	switch g {
	case service.GateCompleted:
		return "✅"
	case service.GateLocked:
		return "🔒"
	}
	return "▶️"
}

func dashboardText(d service.Dashboard) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 오늘 현황 (%s)\n", d.User.Email))
	sb.WriteString(fmt.Sprintf("🎯 목표: 단어 %d개 · 시험 %d문제\n", d.User.DailyWordGoal, d.User.DailyExamGoal))
	for _, a := range service.Activities {
		sb.WriteString(fmt.Sprintf("\n%s %s", gateMark(d.Gates[a]), a.Label()))
	}
	if d.Status.Degraded() {
		sb.WriteString("\n\n" + staleStatusNote)
	}
	return sb.String()
}

func (t *AccountT) sendDashboard(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	d, err := t.service.Dashboard(ctx, userID)
	if err != nil {
		t.reply(chatID, userError(err))
		return
	}

	msg := tgbotapi.NewMessage(chatID, dashboardText(d))

	var row []tgbotapi.InlineKeyboardButton
	for _, a := range []models.ActivityType{models.ActivityWordQuiz, models.ActivityOXQuiz, models.ActivityExamQuiz} {
		if d.Gates[a] == service.GateAvailable {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData("▶️ "+a.Label(), prefixStart+string(a)))
		}
	}
	if len(row) > 0 {
		keyboard := tgbotapi.NewInlineKeyboardMarkup(row)
		msg.ReplyMarkup = &keyboard
	}
	t.send(msg)
}

// listUsers handles /users [role] [page].
func (t *AccountT) listUsers(message *tgbotapi.Message) {
	var (
		role models.Role
		page = 1
	)
	for _, arg := range strings.Fields(message.CommandArguments()) {
		if n, err := strconv.Atoi(arg); err == nil {
			page = n
			continue
		}
		role = models.Role(arg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	users, err := t.service.Users(ctx, message.From.ID, role, page)
	if err != nil {
		t.reply(message.Chat.ID, userError(err))
		return
	}

	if len(users.Users) == 0 {
		t.reply(message.Chat.ID, "ℹ️ 사용자가 없습니다.")
		return
	}

	pages := (users.TotalCount + service.AdminPageSize - 1) / service.AdminPageSize
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👥 사용자 %d명 (%d/%d 페이지)", users.TotalCount, page, pages))
	for _, u := range users.Users {
		sb.WriteString(fmt.Sprintf("\n#%d %s — %s · 단어 %d · 시험 %d", u.ID, u.Email, roleLabel(u.Role), u.DailyWordGoal, u.DailyExamGoal))
	}
	t.reply(message.Chat.ID, sb.String())
}

// setRole handles /role <id> <role>.
func (t *AccountT) setRole(message *tgbotapi.Message) {
	args := strings.Fields(message.CommandArguments())
	if len(args) != 2 {
		t.reply(message.Chat.ID, "사용법: /role ID student|teacher|admin")
		return
	}
	targetID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		t.reply(message.Chat.ID, "사용법: /role ID student|teacher|admin")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	user, err := t.service.SetRole(ctx, message.From.ID, targetID, models.Role(args[1]))
	if err != nil {
		t.reply(message.Chat.ID, userError(err))
		return
	}
	t.reply(message.Chat.ID, fmt.Sprintf("✅ #%d %s → %s", user.ID, user.Email, roleLabel(user.Role)))
}

// setGoals handles /goals <id> <word> <exam>.
func (t *AccountT) setGoals(message *tgbotapi.Message) {
	const usage = "사용법: /goals ID 단어목표 시험목표"

	args := strings.Fields(message.CommandArguments())
	if len(args) != 3 {
		t.reply(message.Chat.ID, usage)
		return
	}
	nums := make([]int64, 0, 3)
	for _, a := range args {
		n, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			t.reply(message.Chat.ID, usage)
			return
		}
		nums = append(nums, n)
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	user, err := t.service.SetGoals(ctx, message.From.ID, nums[0], models.Goals{
		DailyWordGoal: int(nums[1]),
		DailyExamGoal: int(nums[2]),
	})
	if err != nil {
		t.reply(message.Chat.ID, userError(err))
		return
	}
	t.reply(message.Chat.ID, fmt.Sprintf("✅ #%d 목표: 단어 %d · 시험 %d", user.ID, user.DailyWordGoal, user.DailyExamGoal))
}
