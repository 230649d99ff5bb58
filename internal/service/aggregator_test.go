package service

import (
	"encoding/json"
	"testing"

	"github.com/DanRulev/vocamission.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordQuizQuestion(t *testing.T) models.Question {
	t.Helper()

	var mc models.MultipleChoiceQuiz
	body := `{
		"question_word": {"id": 7, "text": "apple", "meaning": "사과"},
		"question_type": "en_to_ko",
		"options": [{"id": 1, "text": "바나나"}, {"id": 3, "text": "사과"}, {"id": 5, "text": "포도"}],
		"correct_option_id": 3
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &mc))
	return models.Question{Kind: models.KindWordQuiz, MC: &mc}
}

func examMCQuestion(t *testing.T) models.Question {
	t.Helper()

	var q models.ExamQuestion
	body := `{
		"id": 11,
		"question_type": "MC",
		"question_text": "She ___ to school.",
		"choices": [{"id": 1, "text": "go"}, {"id": 2, "text": "goes"}],
		"correct_answer": "2"
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &q))
	return models.Question{Kind: models.KindExam, Exam: &q}
}

func oxQuestion(id int64, correct bool) models.Question {
	return models.Question{Kind: models.KindOXQuiz, OX: &models.OXQuiz{
		QuestionWord:  models.Word{ID: id, Text: "word"},
		DisplayText:   "뜻",
		CorrectAnswer: correct,
	}}
}

func TestMatchToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		user    string
		correct string
		want    bool
	}{
		{name: "same token", user: "3", correct: "3", want: true},
		{name: "different token", user: "4", correct: "3", want: false},
		{name: "leading zero is a different token", user: "03", correct: "3", want: false},
		{name: "no trimming", user: "3 ", correct: "3", want: false},
		{name: "case sensitive", user: "a", correct: "A", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MatchToken(tt.user, tt.correct))
		})
	}
}

func TestMatchText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		user    string
		correct string
		want    bool
	}{
		{name: "padding and case ignored", user: "  The Cat sat.  ", correct: "the cat sat.", want: true},
		{name: "both sides normalized", user: "go home", correct: " Go Home\n", want: true},
		{name: "inner spacing matters", user: "the  cat sat.", correct: "the cat sat.", want: false},
		{name: "punctuation matters", user: "the cat sat", correct: "the cat sat.", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MatchText(tt.user, tt.correct))
		})
	}
}

func TestGrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		question func(t *testing.T) models.Question
		answer   models.Answer
		want     models.QuizAttempt
		wantErr  error
	}{
		{
			name:     "word quiz: string id matches numeric correct id",
			question: wordQuizQuestion,
			answer:   models.TextAnswer("3"),
			want: models.QuizAttempt{
				Kind: models.KindWordQuiz, QuestionID: 7, QuestionText: "apple",
				UserAnswer: "사과", CorrectAnswer: "사과", IsCorrect: true,
			},
		},
		{
			name:     "word quiz: wrong option",
			question: wordQuizQuestion,
			answer:   models.TextAnswer("5"),
			want: models.QuizAttempt{
				Kind: models.KindWordQuiz, QuestionID: 7, QuestionText: "apple",
				UserAnswer: "포도", CorrectAnswer: "사과", IsCorrect: false,
			},
		},
		{
			name:     "word quiz: unknown option id",
			question: wordQuizQuestion,
			answer:   models.TextAnswer("03"),
			wantErr:  ErrInvalidAnswer,
		},
		{
			name:     "word quiz: O/X answer",
			question: wordQuizQuestion,
			answer:   models.OXAnswer(true),
			wantErr:  ErrWrongAnswerKind,
		},
		{
			name:     "exam MC: numeric choice id compared as token",
			question: examMCQuestion,
			answer:   models.TextAnswer("2"),
			want: models.QuizAttempt{
				Kind: models.KindExam, QuestionID: 11, QuestionText: "She ___ to school.",
				UserAnswer: "2", CorrectAnswer: "2", IsCorrect: true,
			},
		},
		{
			name:     "exam MC: not a choice",
			question: examMCQuestion,
			answer:   models.TextAnswer("goes"),
			wantErr:  ErrInvalidAnswer,
		},
		{
			name: "exam CORRECT: free text normalized",
			question: func(t *testing.T) models.Question {
				return models.Question{Kind: models.KindExam, Exam: &models.ExamQuestion{
					ID: 12, QuestionType: models.QuestionCorrect, QuestionText: "the cat sit.", CorrectAnswer: "the cat sat.",
				}}
			},
			answer: models.TextAnswer("  The Cat sat.  "),
			want: models.QuizAttempt{
				Kind: models.KindExam, QuestionID: 12, QuestionText: "the cat sit.",
				UserAnswer: "  The Cat sat.  ", CorrectAnswer: "the cat sat.", IsCorrect: true,
			},
		},
		{
			name: "exam CONSTRUCT: blank answer",
			question: func(t *testing.T) models.Question {
				return models.Question{Kind: models.KindExam, Exam: &models.ExamQuestion{
					ID: 13, QuestionType: models.QuestionConstruct, CorrectAnswer: "i like it",
				}}
			},
			answer:  models.TextAnswer("   "),
			wantErr: ErrInvalidAnswer,
		},
		{
			name:     "ox: text answer",
			question: func(t *testing.T) models.Question { return oxQuestion(1, true) },
			answer:   models.TextAnswer("O"),
			wantErr:  ErrWrongAnswerKind,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Grade(tt.question(t), tt.answer)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGrade_OX(t *testing.T) {
	t.Parallel()

	for _, correct := range []bool{true, false} {
		for _, user := range []bool{true, false} {
			got, err := Grade(oxQuestion(1, correct), models.OXAnswer(user))
			require.NoError(t, err)
			assert.Equal(t, user == correct, got.IsCorrect)
			require.NotNil(t, got.UserAnswerOX)
			require.NotNil(t, got.CorrectAnswerOX)
			assert.Equal(t, user, *got.UserAnswerOX)
			assert.Equal(t, correct, *got.CorrectAnswerOX)
			assert.Empty(t, got.UserAnswer)
			assert.Empty(t, got.CorrectAnswer)
		}
	}
}

func TestPasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		correct int
		total   int
		want    bool
	}{
		{correct: 8, total: 10, want: true},
		{correct: 7, total: 10, want: false},
		{correct: 4, total: 5, want: true},
		{correct: 79999, total: 100000, want: false},
		{correct: 80000, total: 100000, want: true},
		{correct: 10, total: 10, want: true},
		{correct: 0, total: 0, want: false},
	}

	for _, tt := range tests {
		tt := tt
		assert.Equal(t, tt.want, Passes(tt.correct, tt.total), "%d/%d", tt.correct, tt.total)
	}
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	attempts := []models.QuizAttempt{
		{QuestionID: 1, IsCorrect: false},
		{QuestionID: 2, IsCorrect: true},
		{QuestionID: 3, IsCorrect: false},
	}
	orig := append([]models.QuizAttempt(nil), attempts...)

	res := Aggregate(attempts)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.Correct)
	assert.False(t, res.Passed)
	assert.Equal(t, []models.QuizAttempt{attempts[0], attempts[2]}, res.Incorrect)

	first := Incorrect(attempts)
	second := Incorrect(attempts)
	assert.Equal(t, first, second)
	assert.Equal(t, orig, attempts)

	empty := Aggregate(nil)
	assert.Equal(t, 0, empty.Total)
	assert.False(t, empty.Passed)
	assert.Empty(t, empty.Incorrect)
}

func TestBuildSubmission(t *testing.T) {
	t.Parallel()

	yes, no := true, false
	attempts := []models.QuizAttempt{
		{Kind: models.KindOXQuiz, QuestionID: 4, UserAnswerOX: &yes, CorrectAnswerOX: &no, IsCorrect: false},
		{Kind: models.KindOXQuiz, QuestionID: 5, UserAnswerOX: &no, CorrectAnswerOX: &no, IsCorrect: true},
	}

	sub := BuildSubmission(models.ActivityOXQuiz, attempts)
	assert.Equal(t, models.QuizSubmission{
		ActivityType:   models.ActivityOXQuiz,
		TotalQuestions: 2,
		CorrectCount:   1,
		Details: []models.AttemptDetail{
			{QuestionWordID: 4, IsCorrect: false, UserAnswer: "O", CorrectAnswer: "X", QuizType: models.KindOXQuiz},
			{QuestionWordID: 5, IsCorrect: true, UserAnswer: "X", CorrectAnswer: "X", QuizType: models.KindOXQuiz},
		},
	}, sub)
}

func TestExamAttempts(t *testing.T) {
	t.Parallel()

	mc := examMCQuestion(t).Exam
	stored := []models.UserGrammarAttempt{
		{QuestionID: 11, Question: *mc, UserAnswer: "1", IsCorrect: false},
		{QuestionID: 12, Question: models.ExamQuestion{QuestionType: models.QuestionCorrect, CorrectAnswer: "ok"}, UserAnswer: "OK", IsCorrect: true},
	}

	got := ExamAttempts(stored)
	require.Len(t, got, 2)
	assert.Equal(t, "go", got[0].UserAnswer)
	assert.Equal(t, "goes", got[0].CorrectAnswer)
	assert.Equal(t, "OK", got[1].UserAnswer)
	assert.Equal(t, 1, Aggregate(got).Correct)
}
