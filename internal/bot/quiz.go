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

const (
	prefixMC       = "mc_"
	prefixOX       = "ox_"
	prefixExam     = "ex_"
	prefixStart    = "start_"
	prefixRetry    = "retry_"
	prefixRetryOK  = "retryok_"
	dataExamReview = "exam_review"
	dataMainMenu   = "main_menu"

	maxMessageLen = 4000
)

type QuizT struct {
	bot     BotSender
	service QuizSI
	timeout time.Duration
	log     *zap.Logger
}

func NewQuizTAPI(bot BotSender, service QuizSI, timeout time.Duration, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:     bot,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (t *QuizT) send(msg tgbotapi.Chattable) {
	sendMessage(t.bot, t.log, msg)
}

func (t *QuizT) sendError(chatID int64, err error) {
	t.send(tgbotapi.NewMessage(chatID, userError(err)))
}

func (t *QuizT) start(chatID, userID int64, activity models.ActivityType) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	state, err := t.service.Start(ctx, userID, activity, false)
	if err != nil {
		t.log.Warn("failed to start quiz", zap.Int64("user_id", userID), zap.String("activity", string(activity)), zap.Error(err))
		t.sendError(chatID, err)
		return
	}

	t.sendStartResult(chatID, state)
}

func (t *QuizT) sendStartResult(chatID int64, state models.SessionState) {
	label := state.Activity.Label()

	switch state.Phase {
	case models.PhaseAlreadyCompleted:
		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("✅ 오늘의 %s 을(를) 이미 완료했습니다.", label))
		keyboard := completedKeyboard(state.Activity)
		msg.ReplyMarkup = &keyboard
		t.send(msg)
	case models.PhaseLocked:
		pre := service.Prerequisite(state.Activity)
		t.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("🔒 %s 을(를) 먼저 완료해야 %s 을(를) 할 수 있어요.", pre.Label(), label)))
	case models.PhaseUnavailable:
		t.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("ℹ️ 오늘은 %s 문제를 만들 수 없습니다. 학습할 단어나 연결된 문제가 아직 없어요.", label)))
	case models.PhaseAnswering:
		if state.Retry {
			t.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("🔁 %s 을(를) 다시 시작합니다.", label)))
		}
		t.sendQuestion(chatID, state)
	}
}

func completedKeyboard(activity models.ActivityType) tgbotapi.InlineKeyboardMarkup {
	row := []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("🔁 다시 풀기", prefixRetry+string(activity)),
	}
	if activity == models.ActivityExamQuiz {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("📋 결과 보기", dataExamReview))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func (t *QuizT) sendQuestion(chatID int64, state models.SessionState) {
	q, ok := state.Live()
	if !ok {
		return
	}

	text, keyboard := renderQuestion(q, state.Index, len(state.Questions))

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "markdown"
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	t.send(msg)
}

// renderQuestion builds the question text and, for choice questions, the
// answer buttons. Button data carries the question index so presses on an
// older question can be told apart.
func renderQuestion(q models.Question, index, total int) (string, *tgbotapi.InlineKeyboardMarkup) {
	progress := fmt.Sprintf("(%d/%d)", index+1, total)

	switch q.Kind {
	case models.KindWordQuiz:
		text := fmt.Sprintf("❓ %s *%s* 의 뜻은?", progress, escape(q.MC.QuestionWord.Text))

		var buttons [][]tgbotapi.InlineKeyboardButton
		row := make([]tgbotapi.InlineKeyboardButton, 0, 2)
		for _, o := range q.MC.Options {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(o.Text, fmt.Sprintf("%s%d_%d", prefixMC, index, o.ID)))
			if len(row) == 2 {
				buttons = append(buttons, row)
				row = make([]tgbotapi.InlineKeyboardButton, 0, 2)
			}
		}
		if len(row) > 0 {
			buttons = append(buttons, row)
		}
		keyboard := tgbotapi.NewInlineKeyboardMarkup(buttons...)
		return text, &keyboard

	case models.KindOXQuiz:
		text := fmt.Sprintf("⭕❌ %s *%s* = %s\n맞으면 O, 틀리면 X", progress, escape(q.OX.QuestionWord.Text), escape(q.OX.DisplayText))
		keyboard := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⭕ O", fmt.Sprintf("%s%d_o", prefixOX, index)),
			tgbotapi.NewInlineKeyboardButtonData("❌ X", fmt.Sprintf("%s%d_x", prefixOX, index)),
		))
		return text, &keyboard

	case models.KindExam:
		e := q.Exam
		var sb strings.Builder
		sb.WriteString("📝 ")
		sb.WriteString(progress)
		if e.GrammarPoint != "" {
			sb.WriteString(" _")
			sb.WriteString(escape(e.GrammarPoint))
			sb.WriteString("_")
		}
		sb.WriteString("\n")
		sb.WriteString(escape(e.QuestionText))

		switch e.QuestionType {
		case models.QuestionMC:
			var rows [][]tgbotapi.InlineKeyboardButton
			for _, c := range e.Choices {
				rows = append(rows, tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData(c.Text, fmt.Sprintf("%s%d_%s", prefixExam, index, c.ID)),
				))
			}
			keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
			return sb.String(), &keyboard
		case models.QuestionConstruct:
			sb.WriteString("\n🧩 ")
			sb.WriteString(escape(strings.Join(e.ScrambledWords, " / ")))
			sb.WriteString("\n\n✏️ 단어를 올바른 순서로 배열해서 보내주세요.")
		default:
			sb.WriteString("\n\n✏️ 문장을 올바르게 고쳐서 보내주세요.")
		}
		return sb.String(), nil
	}

	return "", nil
}

// parseAnswer reads "<prefix><index>_<value>" callback data.
func parseAnswer(data string) (int, models.Answer, bool) {
	parts := strings.SplitN(data, "_", 3)
	if len(parts) != 3 {
		return 0, models.Answer{}, false
	}

	index, err := strconv.Atoi(parts[1])
	if err != nil || index < 0 {
		return 0, models.Answer{}, false
	}

	switch parts[0] + "_" {
	case prefixMC, prefixExam:
		return index, models.TextAnswer(parts[2]), true
	case prefixOX:
		switch parts[2] {
		case "o":
			return index, models.OXAnswer(true), true
		case "x":
			return index, models.OXAnswer(false), true
		}
	}
	return 0, models.Answer{}, false
}

func (t *QuizT) handleAnswer(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	userID := query.From.ID

	index, answer, ok := parseAnswer(query.Data)
	if !ok {
		t.log.Warn("malformed answer callback", zap.String("data", query.Data))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	state, err := t.service.Current(ctx, userID)
	if err != nil || state.Phase != models.PhaseAnswering || state.Index != index {
		t.clearKeyboard(query.Message)
		return
	}

	t.submit(chatID, userID, answer, query.Message)
}

// answerText takes an ordinary message as the answer to a free-text exam
// question. It reports whether the message was consumed.
func (t *QuizT) answerText(message *tgbotapi.Message) bool {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	state, err := t.service.Current(ctx, message.From.ID)
	if err != nil {
		return false
	}
	q, ok := state.Live()
	if !ok || q.Kind != models.KindExam || q.Exam.QuestionType == models.QuestionMC {
		return false
	}

	t.submit(message.Chat.ID, message.From.ID, models.TextAnswer(message.Text), nil)
	return true
}

// submit sends one answer. When the question came with buttons, its message
// is edited so the buttons cannot be pressed again.
func (t *QuizT) submit(chatID, userID int64, answer models.Answer, question *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	fb, err := t.service.Answer(ctx, userID, answer)
	if err != nil {
		t.log.Warn("answer rejected", zap.Int64("user_id", userID), zap.Error(err))
		t.sendError(chatID, err)
		return
	}

	status := feedbackText(fb)
	if question != nil {
		edit := tgbotapi.NewEditMessageText(chatID, question.MessageID, fmt.Sprintf("%s\n\n%s", question.Text, status))
		t.send(edit)
	} else {
		t.send(tgbotapi.NewMessage(chatID, status))
	}

	if !fb.Finished {
		t.sendQuestion(chatID, fb.State)
		return
	}
	t.sendResult(chatID, fb.State)
}

func (t *QuizT) clearKeyboard(message *tgbotapi.Message) {
	edit := tgbotapi.NewEditMessageReplyMarkup(message.Chat.ID, message.MessageID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	})
	t.send(edit)
}

func oxText(v *bool) string {
	if v == nil {
		return "-"
	}
	if *v {
		return "O"
	}
	return "X"
}

// answerPair returns the user and correct answers in displayable form.
func answerPair(a models.QuizAttempt, exam *models.ExamQuestion) (string, string) {
	switch {
	case a.Kind == models.KindOXQuiz:
		return oxText(a.UserAnswerOX), oxText(a.CorrectAnswerOX)
	case exam != nil && exam.QuestionType == models.QuestionMC:
		return exam.ChoiceText(a.UserAnswer), exam.ChoiceText(a.CorrectAnswer)
	}
	return a.UserAnswer, a.CorrectAnswer
}

func feedbackText(fb service.Feedback) string {
	if fb.Attempt.IsCorrect {
		return "✅ 정답!"
	}

	_, correct := answerPair(fb.Attempt, fb.Question.Exam)
	text := "❌ 오답. 정답: " + correct
	if fb.Question.Exam != nil && fb.Question.Exam.Explanation != "" {
		text += "\n💡 " + fb.Question.Exam.Explanation
	}
	return text
}

func percent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return correct * 100 / total
}

func resultText(state models.SessionState) string {
	res := state.Result
	if res == nil {
		return ""
	}

	exams := make(map[int64]*models.ExamQuestion)
	for _, q := range state.Questions {
		if q.Exam != nil {
			exams[q.Exam.ID] = q.Exam
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏁 %s 결과\n", state.Activity.Label()))
	sb.WriteString(fmt.Sprintf("점수: %d/%d (%d%%)\n", res.Correct, res.Total, percent(res.Correct, res.Total)))
	if res.Passed {
		sb.WriteString("🎉 통과!")
	} else {
		sb.WriteString("😢 80% 이상 맞혀야 통과입니다.")
	}

	writeIncorrect(&sb, res.Incorrect, exams)

	if state.Warning != "" {
		sb.WriteString("\n\n⚠️ ")
		sb.WriteString(state.Warning)
	}
	return sb.String()
}

func writeIncorrect(sb *strings.Builder, incorrect []models.QuizAttempt, exams map[int64]*models.ExamQuestion) {
	if len(incorrect) == 0 {
		return
	}
	sb.WriteString("\n\n❌ 틀린 문제:")
	for _, a := range incorrect {
		var exam *models.ExamQuestion
		if a.Kind == models.KindExam {
			exam = exams[a.QuestionID]
		}
		user, correct := answerPair(a, exam)
		if user == "" {
			user = "(입력 안 함)"
		}
		sb.WriteString(fmt.Sprintf("\n• %s — 내 답: %s / 정답: %s", a.QuestionText, user, correct))
	}
}

func (t *QuizT) sendResult(chatID int64, state models.SessionState) {
	msg := tgbotapi.NewMessage(chatID, resultText(state))
	keyboard := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔁 다시 풀기", prefixRetry+string(state.Activity)),
		tgbotapi.NewInlineKeyboardButtonData("🏠 메뉴", dataMainMenu),
	))
	msg.ReplyMarkup = &keyboard
	t.send(msg)
}

func (t *QuizT) handleQuizCallbackQuery(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	userID := query.From.ID
	data := query.Data

	switch {
	case strings.HasPrefix(data, prefixStart):
		t.start(chatID, userID, models.ActivityType(strings.TrimPrefix(data, prefixStart)))
	case strings.HasPrefix(data, prefixRetry):
		t.clearKeyboard(query.Message)
		t.confirmRetry(chatID, models.ActivityType(strings.TrimPrefix(data, prefixRetry)))
	case strings.HasPrefix(data, prefixRetryOK):
		t.clearKeyboard(query.Message)
		t.retry(chatID, userID, models.ActivityType(strings.TrimPrefix(data, prefixRetryOK)))
	case data == dataExamReview:
		t.sendExamReview(chatID, userID)
	default:
		t.log.Warn("unknown quiz callback", zap.String("data", data))
	}
}

// confirmRetry asks before the reset, which deletes today's completion
// record on the server.
func (t *QuizT) confirmRetry(chatID int64, activity models.ActivityType) {
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("⚠️ 오늘의 %s 완료 기록이 삭제되고 처음부터 다시 풀게 됩니다. 계속할까요?", activity.Label()))
	keyboard := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✅ 다시 풀기", prefixRetryOK+string(activity)),
		tgbotapi.NewInlineKeyboardButtonData("❌ 취소", dataMainMenu),
	))
	msg.ReplyMarkup = &keyboard
	t.send(msg)
}

func (t *QuizT) retry(chatID, userID int64, activity models.ActivityType) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	state, err := t.service.ResetAndRetry(ctx, userID, activity)
	if err != nil {
		t.log.Warn("failed to reset and retry", zap.Int64("user_id", userID), zap.String("activity", string(activity)), zap.Error(err))
		t.sendError(chatID, err)
		return
	}

	t.sendStartResult(chatID, state)
}

func (t *QuizT) sendExamReview(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	review, err := t.service.ExamReview(ctx, userID)
	if err != nil {
		t.sendError(chatID, err)
		return
	}

	if review.Result.Total == 0 {
		t.send(tgbotapi.NewMessage(chatID, "ℹ️ 오늘 푼 문법 시험이 없습니다."))
		return
	}

	res := review.Result
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 오늘의 문법 시험: %d/%d (%d%%)", res.Correct, res.Total, percent(res.Correct, res.Total)))
	writeIncorrect(&sb, res.Incorrect, nil)

	t.send(tgbotapi.NewMessage(chatID, sb.String()))
}

func (t *QuizT) sendWrongNote(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	wrong, err := t.service.WrongNote(ctx, userID)
	if err != nil {
		t.sendError(chatID, err)
		return
	}

	if len(wrong) == 0 {
		t.send(tgbotapi.NewMessage(chatID, "🎉 틀린 문제가 없습니다!"))
		return
	}

	lines := make([]string, 0, len(wrong)+1)
	lines = append(lines, fmt.Sprintf("❗ 오답 노트 (최근 %d개)", len(wrong)))
	for _, w := range wrong {
		word := "#" + strconv.FormatInt(w.QuestionWordID, 10)
		if w.Word != nil {
			word = w.Word.Text
			if w.Word.Meaning != "" {
				word += " (" + w.Word.Meaning + ")"
			}
		}
		lines = append(lines, fmt.Sprintf("• %s — 내 답: %s / 정답: %s", word, w.UserAnswer, w.CorrectAnswer))
	}

	for _, chunk := range splitLines(lines, maxMessageLen) {
		t.send(tgbotapi.NewMessage(chatID, chunk))
	}
}

// splitLines joins lines into chunks no longer than limit bytes. A single
// longer line becomes its own chunk.
func splitLines(lines []string, limit int) []string {
	var (
		chunks []string
		sb     strings.Builder
	)
	for _, l := range lines {
		if sb.Len() > 0 && sb.Len()+1+len(l) > limit {
			chunks = append(chunks, sb.String())
			sb.Reset()
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(l)
	}
	if sb.Len() > 0 {
		chunks = append(chunks, sb.String())
	}
	return chunks
}

func (t *QuizT) sendQuizStats(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	stats, err := t.service.QuizStats(ctx, userID)
	if err != nil {
		t.log.Warn("failed to get quiz stats", zap.Int64("user_id", userID), zap.Error(err))
		t.send(tgbotapi.NewMessage(chatID, "❌ 기록을 불러오지 못했습니다."))
		return
	}

	msg := tgbotapi.NewMessage(chatID, stats)
	msg.ParseMode = "markdown"
	t.send(msg)
}

func (t *QuizT) abandon(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	if err := t.service.Abandon(ctx, message.From.ID); err != nil {
		t.sendError(message.Chat.ID, err)
		return
	}
	t.send(tgbotapi.NewMessage(message.Chat.ID, "🛑 퀴즈를 그만두었습니다. 결과는 제출되지 않습니다."))
}
