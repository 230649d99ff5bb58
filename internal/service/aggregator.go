package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DanRulev/vocamission.git/internal/models"
)

// MatchToken compares option identifiers as opaque tokens.
func MatchToken(user, correct string) bool {
	return user == correct
}

// MatchText compares free-text answers ignoring case and surrounding space.
func MatchText(user, correct string) bool {
	return strings.ToLower(strings.TrimSpace(user)) == strings.ToLower(strings.TrimSpace(correct))
}

func MatchBool(user, correct bool) bool {
	return user == correct
}

func optionToken(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Grade checks one answer against its question and builds the attempt.
func Grade(q models.Question, a models.Answer) (models.QuizAttempt, error) {
	switch q.Kind {
	case models.KindWordQuiz:
		if q.MC == nil {
			return models.QuizAttempt{}, fmt.Errorf("word quiz question without body")
		}
		return gradeMultipleChoice(*q.MC, a)
	case models.KindOXQuiz:
		if q.OX == nil {
			return models.QuizAttempt{}, fmt.Errorf("ox quiz question without body")
		}
		return gradeOX(*q.OX, a)
	case models.KindExam:
		if q.Exam == nil {
			return models.QuizAttempt{}, fmt.Errorf("exam question without body")
		}
		return gradeExam(*q.Exam, a)
	}
	return models.QuizAttempt{}, fmt.Errorf("unknown question kind %q", q.Kind)
}

func gradeMultipleChoice(q models.MultipleChoiceQuiz, a models.Answer) (models.QuizAttempt, error) {
	if a.OX != nil {
		return models.QuizAttempt{}, ErrWrongAnswerKind
	}

	var (
		selected string
		found    bool
	)
	for _, o := range q.Options {
		if optionToken(o.ID) == a.Text {
			selected, found = o.Text, true
			break
		}
	}
	if !found {
		return models.QuizAttempt{}, ErrInvalidAnswer
	}

	return models.QuizAttempt{
		Kind:          models.KindWordQuiz,
		QuestionID:    q.QuestionWord.ID,
		QuestionText:  q.QuestionWord.Text,
		UserAnswer:    selected,
		CorrectAnswer: q.OptionText(q.CorrectOptionID),
		IsCorrect:     MatchToken(a.Text, optionToken(q.CorrectOptionID)),
	}, nil
}

func gradeOX(q models.OXQuiz, a models.Answer) (models.QuizAttempt, error) {
	if a.OX == nil {
		return models.QuizAttempt{}, ErrWrongAnswerKind
	}

	user, correct := *a.OX, q.CorrectAnswer
	return models.QuizAttempt{
		Kind:            models.KindOXQuiz,
		QuestionID:      q.QuestionWord.ID,
		QuestionText:    q.QuestionWord.Text,
		QuestionDetail:  q.DisplayText,
		UserAnswerOX:    &user,
		CorrectAnswerOX: &correct,
		IsCorrect:       MatchBool(user, correct),
	}, nil
}

func gradeExam(q models.ExamQuestion, a models.Answer) (models.QuizAttempt, error) {
	if a.OX != nil {
		return models.QuizAttempt{}, ErrWrongAnswerKind
	}

	attempt := models.QuizAttempt{
		Kind:          models.KindExam,
		QuestionID:    q.ID,
		QuestionText:  q.QuestionText,
		UserAnswer:    a.Text,
		CorrectAnswer: q.CorrectAnswer,
	}

	if q.QuestionType == models.QuestionMC {
		valid := false
		for _, c := range q.Choices {
			if string(c.ID) == a.Text {
				valid = true
				break
			}
		}
		if !valid {
			return models.QuizAttempt{}, ErrInvalidAnswer
		}
		attempt.IsCorrect = MatchToken(a.Text, q.CorrectAnswer)
		return attempt, nil
	}

	if strings.TrimSpace(a.Text) == "" {
		return models.QuizAttempt{}, ErrInvalidAnswer
	}
	attempt.IsCorrect = MatchText(a.Text, q.CorrectAnswer)
	return attempt, nil
}

// Passes applies the 80% pass bar without floating point.
func Passes(correct, total int) bool {
	return total > 0 && 5*correct >= 4*total
}

// Incorrect returns the failed attempts in their original order. The input
// is not modified.
func Incorrect(attempts []models.QuizAttempt) []models.QuizAttempt {
	out := make([]models.QuizAttempt, 0)
	for _, a := range attempts {
		if !a.IsCorrect {
			out = append(out, a)
		}
	}
	return out
}

func Aggregate(attempts []models.QuizAttempt) models.Result {
	correct := 0
	for _, a := range attempts {
		if a.IsCorrect {
			correct++
		}
	}
	return models.Result{
		Total:     len(attempts),
		Correct:   correct,
		Passed:    Passes(correct, len(attempts)),
		Incorrect: Incorrect(attempts),
	}
}

func oxLabel(v *bool) string {
	if v == nil {
		return ""
	}
	if *v {
		return "O"
	}
	return "X"
}

// BuildSubmission turns word quiz or O/X attempts into the result payload.
func BuildSubmission(activity models.ActivityType, attempts []models.QuizAttempt) models.QuizSubmission {
	res := Aggregate(attempts)
	details := make([]models.AttemptDetail, 0, len(attempts))
	for _, a := range attempts {
		d := models.AttemptDetail{
			QuestionWordID: a.QuestionID,
			IsCorrect:      a.IsCorrect,
			UserAnswer:     a.UserAnswer,
			CorrectAnswer:  a.CorrectAnswer,
			QuizType:       a.Kind,
		}
		if a.Kind == models.KindOXQuiz {
			d.UserAnswer = oxLabel(a.UserAnswerOX)
			d.CorrectAnswer = oxLabel(a.CorrectAnswerOX)
		}
		details = append(details, d)
	}
	return models.QuizSubmission{
		ActivityType:   activity,
		TotalQuestions: res.Total,
		CorrectCount:   res.Correct,
		Details:        details,
	}
}

func BuildExamSubmission(attempts []models.QuizAttempt) models.ExamSubmission {
	out := make([]models.GrammarAttemptCreate, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, models.GrammarAttemptCreate{
			QuestionID: a.QuestionID,
			UserAnswer: a.UserAnswer,
			IsCorrect:  a.IsCorrect,
		})
	}
	return models.ExamSubmission{
		ActivityType: models.ActivityExamQuiz,
		Attempts:     out,
	}
}

// ExamAttempts converts stored grammar attempts back into quiz attempts.
func ExamAttempts(stored []models.UserGrammarAttempt) []models.QuizAttempt {
	out := make([]models.QuizAttempt, 0, len(stored))
	for _, s := range stored {
		user, correct := s.UserAnswer, s.Question.CorrectAnswer
		if s.Question.QuestionType == models.QuestionMC {
			user = s.Question.ChoiceText(user)
			correct = s.Question.ChoiceText(correct)
		}
		out = append(out, models.QuizAttempt{
			Kind:          models.KindExam,
			QuestionID:    s.QuestionID,
			QuestionText:  s.Question.QuestionText,
			UserAnswer:    user,
			CorrectAnswer: correct,
			IsCorrect:     s.IsCorrect,
		})
	}
	return out
}
