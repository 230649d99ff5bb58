package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/vocamission.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const prefixListen = "ls_"

type StudyT struct {
	bot     BotSender
	service StudySI
	timeout time.Duration
	log     *zap.Logger
}

func NewStudyTAPI(bot BotSender, service StudySI, timeout time.Duration, log *zap.Logger) *StudyT {
	return &StudyT{
		bot:     bot,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (t *StudyT) send(msg tgbotapi.Chattable) {
	sendMessage(t.bot, t.log, msg)
}

func (t *StudyT) sendStudy(chatID, userID int64, review bool) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	state, err := t.service.StudyWords(ctx, userID, review)
	if err != nil {
		t.log.Warn("failed to load today's words", zap.Int64("user_id", userID), zap.Error(err))
		t.send(tgbotapi.NewMessage(chatID, userError(err)))
		return
	}

	if len(state.Words) == 0 {
		text := "ℹ️ 오늘 학습할 단어가 없습니다."
		if review {
			text = "ℹ️ 복습할 단어가 없습니다."
		}
		t.send(tgbotapi.NewMessage(chatID, text))
		return
	}

	msg := tgbotapi.NewMessage(chatID, studyText(state, review))
	msg.ParseMode = "markdown"
	keyboard := listenKeyboard(state)
	msg.ReplyMarkup = &keyboard
	t.send(msg)
}

func studyText(state models.StudyState, review bool) string {
	var sb strings.Builder
	if review {
		sb.WriteString("🔁 *복습 단어*\n")
	} else {
		sb.WriteString("📖 *오늘의 단어*\n")
	}
	sb.WriteString("영어와 한국어 발음을 모두 들으면 학습이 완료됩니다.\n")

	for i, w := range state.Words {
		sb.WriteString(fmt.Sprintf("\n%d. *%s*", i+1, escape(w.Text)))
		if w.Pronunciation != nil && *w.Pronunciation != "" {
			sb.WriteString(" (" + escape(*w.Pronunciation) + ")")
		}
		sb.WriteString(" — " + escape(w.Meaning))
		if w.ExampleSentenceEnglish != nil && *w.ExampleSentenceEnglish != "" {
			sb.WriteString("\n   _" + escape(*w.ExampleSentenceEnglish) + "_")
			if w.ExampleSentenceKorean != nil && *w.ExampleSentenceKorean != "" {
				sb.WriteString("\n   " + escape(*w.ExampleSentenceKorean))
			}
		}
	}

	if state.Completed {
		sb.WriteString("\n\n✅ 오늘의 단어 학습을 완료했습니다.")
	}
	return sb.String()
}

// listenKeyboard has one row per word: the English and the Korean listen
// buttons, ticked once heard.
func listenKeyboard(state models.StudyState) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(state.Words))
	for _, w := range state.Words {
		heard := state.Listened[w.ID]
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(listenLabel(w.Text, heard[models.LangEnglish]), listenData(w.ID, models.LangEnglish)),
			tgbotapi.NewInlineKeyboardButtonData(listenLabel(w.Meaning, heard[models.LangKorean]), listenData(w.ID, models.LangKorean)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func listenLabel(text string, heard bool) string {
	if heard {
		return "✅ " + text
	}
	return "🔊 " + text
}

func listenData(wordID int64, lang models.Language) string {
	return fmt.Sprintf("%s%d_%s", prefixListen, wordID, lang)
}

func parseListen(data string) (int64, models.Language, bool) {
	parts := strings.Split(strings.TrimPrefix(data, prefixListen), "_")
	if len(parts) != 2 {
		return 0, "", false
	}
	wordID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, "", false
	}
	lang := models.Language(parts[1])
	if !lang.Valid() {
		return 0, "", false
	}
	return wordID, lang, true
}

func audioURL(state models.StudyState, wordID int64, lang models.Language) string {
	for _, w := range state.Words {
		if w.ID != wordID {
			continue
		}
		switch lang {
		case models.LangEnglish:
			if w.EnglishAudioURL != nil {
				return *w.EnglishAudioURL
			}
		case models.LangKorean:
			if w.KoreanAudioURL != nil {
				return *w.KoreanAudioURL
			}
		}
	}
	return ""
}

func (t *StudyT) handleListen(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	userID := query.From.ID

	wordID, lang, ok := parseListen(query.Data)
	if !ok {
		t.log.Warn("malformed listen callback", zap.String("data", query.Data))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	progress, err := t.service.Listen(ctx, userID, wordID, lang)
	if err != nil {
		t.log.Warn("failed to record listen", zap.Int64("user_id", userID), zap.Int64("word_id", wordID), zap.Error(err))
		t.send(tgbotapi.NewMessage(chatID, userError(err)))
		return
	}

	if url := audioURL(progress.State, wordID, lang); url != "" {
		t.send(tgbotapi.NewAudio(chatID, tgbotapi.FileURL(url)))
	}

	t.send(tgbotapi.NewEditMessageReplyMarkup(chatID, query.Message.MessageID, listenKeyboard(progress.State)))

	if progress.Warning != "" {
		t.send(tgbotapi.NewMessage(chatID, "⚠️ 학습 완료가 기록되지 않았습니다. 버튼을 한 번 더 눌러주세요."))
	}

	if progress.JustCompleted {
		msg := tgbotapi.NewMessage(chatID, "🎉 오늘의 단어 학습 완료! 이제 단어 퀴즈를 풀 수 있어요.")
		keyboard := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧠 단어 퀴즈 시작", prefixStart+string(models.ActivityWordQuiz)),
			tgbotapi.NewInlineKeyboardButtonData("⭕ O/X 퀴즈 시작", prefixStart+string(models.ActivityOXQuiz)),
		))
		msg.ReplyMarkup = &keyboard
		t.send(msg)
	}
}
