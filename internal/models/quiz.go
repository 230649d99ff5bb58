package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type ActivityType string

const (
	ActivityWordStudy ActivityType = "word_study"
	ActivityWordQuiz  ActivityType = "word_quiz"
	ActivityOXQuiz    ActivityType = "ox_quiz"
	ActivityExamQuiz  ActivityType = "exam_quiz"
)

func (a ActivityType) Valid() bool {
	switch a {
	case ActivityWordStudy, ActivityWordQuiz, ActivityOXQuiz, ActivityExamQuiz:
		return true
	}
	return false
}

// Label is the name shown to students.
func (a ActivityType) Label() string {
	switch a {
	case ActivityWordStudy:
		return "단어 학습"
	case ActivityWordQuiz:
		return "단어 퀴즈"
	case ActivityOXQuiz:
		return "O/X 퀴즈"
	case ActivityExamQuiz:
		return "문법 시험"
	}
	return string(a)
}

// QuizKind is the discriminator of a quiz question and of the attempt made on it.
type QuizKind string

const (
	KindWordQuiz QuizKind = "word_quiz"
	KindOXQuiz   QuizKind = "ox_quiz"
	KindExam     QuizKind = "exam_quiz"
)

// KindOf returns the question kind a quiz activity is made of.
func KindOf(activity ActivityType) (QuizKind, error) {
	switch activity {
	case ActivityWordQuiz:
		return KindWordQuiz, nil
	case ActivityOXQuiz:
		return KindOXQuiz, nil
	case ActivityExamQuiz:
		return KindExam, nil
	}
	return "", fmt.Errorf("activity %q is not a quiz", activity)
}

// Token is an opaque identifier the backend sends either as a JSON string or
// as a JSON number. Numbers keep their literal decimal form.
type Token string

func (t *Token) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Token(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("token must be a string or a number: %w", err)
	}
	*t = Token(n.String())
	return nil
}

type QuizOption struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

type MultipleChoiceQuiz struct {
	QuestionWord    Word         `json:"question_word"`
	QuestionType    string       `json:"question_type"`
	Options         []QuizOption `json:"options"`
	CorrectOptionID int64        `json:"correct_option_id"`
}

func (q MultipleChoiceQuiz) OptionText(id int64) string {
	for _, o := range q.Options {
		if o.ID == id {
			return o.Text
		}
	}
	return ""
}

type OXQuiz struct {
	QuestionWord  Word   `json:"question_word"`
	DisplayText   string `json:"display_text"`
	DisplayType   string `json:"display_type"`
	CorrectAnswer bool   `json:"correct_answer"`
}

type QuizSetRequest struct {
	Count    int  `json:"count"`
	IsReview bool `json:"is_review"`
}

// Question is one item of a quiz set. Exactly one of MC, OX and Exam is set,
// selected by Kind.
type Question struct {
	Kind QuizKind            `json:"kind"`
	MC   *MultipleChoiceQuiz `json:"mc,omitempty"`
	OX   *OXQuiz             `json:"ox,omitempty"`
	Exam *ExamQuestion       `json:"exam,omitempty"`
}

// Answer is the user's input for the live question. Text carries option ids
// and free text, OX carries the O/X choice.
type Answer struct {
	Text string `json:"text,omitempty"`
	OX   *bool  `json:"ox,omitempty"`
}

func TextAnswer(s string) Answer { return Answer{Text: s} }

func OXAnswer(v bool) Answer { return Answer{OX: &v} }

// QuizAttempt is one answered question. The text pair is set for word_quiz
// and exam attempts, the OX pair for ox_quiz attempts.
type QuizAttempt struct {
	Kind            QuizKind `json:"quiz_type"`
	QuestionID      int64    `json:"question_id"`
	QuestionText    string   `json:"question_text"`
	QuestionDetail  string   `json:"question_detail,omitempty"`
	UserAnswer      string   `json:"user_answer,omitempty"`
	CorrectAnswer   string   `json:"correct_answer,omitempty"`
	UserAnswerOX    *bool    `json:"user_answer_ox,omitempty"`
	CorrectAnswerOX *bool    `json:"correct_answer_ox,omitempty"`
	IsCorrect       bool     `json:"is_correct"`
}

type TodayActivityStatus struct {
	WordStudy bool `json:"word_study"`
	WordQuiz  bool `json:"word_quiz"`
	ExamQuiz  bool `json:"exam_quiz"`
}

type CompletionStatus struct {
	CompletedToday bool `json:"completed_today"`
}

type CompletionRequest struct {
	ActivityType ActivityType `json:"activity_type"`
}

type DailyActivityLog struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"user_id"`
	ActivityType ActivityType    `json:"activity_type"`
	CompletedAt  time.Time       `json:"completed_at"`
	Details      json.RawMessage `json:"details,omitempty"`
}

type AttemptDetail struct {
	QuestionWordID int64    `json:"question_word_id"`
	IsCorrect      bool     `json:"is_correct"`
	UserAnswer     string   `json:"user_answer"`
	CorrectAnswer  string   `json:"correct_answer"`
	QuizType       QuizKind `json:"quiz_type"`
}

type QuizSubmission struct {
	ActivityType   ActivityType    `json:"activity_type"`
	TotalQuestions int             `json:"total_questions"`
	CorrectCount   int             `json:"correct_count"`
	Details        []AttemptDetail `json:"details"`
}

type WrongAnswer struct {
	ID             int64     `json:"id"`
	QuestionWordID int64     `json:"question_word_id"`
	Word           *Word     `json:"question_word,omitempty"`
	UserAnswer     string    `json:"user_answer"`
	CorrectAnswer  string    `json:"correct_answer"`
	QuizType       string    `json:"quiz_type"`
	AttemptedAt    time.Time `json:"attempted_at"`
}

// ResultRecord is the client-side log of a finished quiz session.
type ResultRecord struct {
	UserID       int64        `db:"user_id"`
	ActivityType ActivityType `db:"activity_type"`
	Total        int          `db:"total"`
	Correct      int          `db:"correct"`
	Passed       bool         `db:"passed"`
	Synced       bool         `db:"synced"`
	CreatedAt    time.Time    `db:"created_at"`
}

type QuizStats struct {
	TotalCount int `db:"total_count"`
	RightCount int `db:"right_count"`
	WrongCount int `db:"wrong_count"`
}
