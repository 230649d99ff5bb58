package models

import (
	"errors"
	"fmt"
	"time"
)

type QuestionType string

const (
	QuestionMC        QuestionType = "MC"
	QuestionCorrect   QuestionType = "CORRECT"
	QuestionConstruct QuestionType = "CONSTRUCT"
)

type Choice struct {
	ID   Token  `json:"id"`
	Text string `json:"text"`
}

type ExamQuestion struct {
	ID             int64        `json:"id"`
	QuestionType   QuestionType `json:"question_type"`
	GrammarPoint   string       `json:"grammar_point"`
	QuestionText   string       `json:"question_text"`
	Choices        []Choice     `json:"choices,omitempty"`
	CorrectAnswer  string       `json:"correct_answer"`
	ScrambledWords []string     `json:"scrambled_words,omitempty"`
	Explanation    string       `json:"explanation,omitempty"`
}

var ErrInvalidQuestion = errors.New("invalid exam question")

// Validate checks that choices are present iff the question is multiple-choice.
func (q ExamQuestion) Validate() error {
	switch q.QuestionType {
	case QuestionMC:
		if len(q.Choices) == 0 {
			return fmt.Errorf("%w: question %d is MC without choices", ErrInvalidQuestion, q.ID)
		}
	case QuestionCorrect, QuestionConstruct:
		if q.Choices != nil {
			return fmt.Errorf("%w: question %d is %s with choices", ErrInvalidQuestion, q.ID, q.QuestionType)
		}
	default:
		return fmt.Errorf("%w: question %d has unknown type %q", ErrInvalidQuestion, q.ID, q.QuestionType)
	}
	return nil
}

// ChoiceText resolves a choice id to its text, falling back to the id itself.
func (q ExamQuestion) ChoiceText(id string) string {
	for _, c := range q.Choices {
		if string(c.ID) == id {
			return c.Text
		}
	}
	return id
}

type GrammarAttemptCreate struct {
	QuestionID int64  `json:"question_id"`
	UserAnswer string `json:"user_answer"`
	IsCorrect  bool   `json:"is_correct"`
}

type ExamSubmission struct {
	ActivityType ActivityType           `json:"activity_type"`
	Attempts     []GrammarAttemptCreate `json:"attempts"`
}

type UserGrammarAttempt struct {
	ID          int64        `json:"id"`
	QuestionID  int64        `json:"question_id"`
	Question    ExamQuestion `json:"question"`
	UserAnswer  string       `json:"user_answer"`
	IsCorrect   bool         `json:"is_correct"`
	AttemptedAt time.Time    `json:"attempted_at"`
}
