package models

import "time"

type Phase string

const (
	PhaseAnswering        Phase = "answering"
	PhaseProcessing       Phase = "processing"
	PhaseFinished         Phase = "finished"
	PhaseAlreadyCompleted Phase = "already_completed"
	PhaseUnavailable      Phase = "unavailable"
	PhaseLocked           Phase = "locked"
)

// Result is the aggregate of a finished attempt list.
type Result struct {
	Total     int           `json:"total"`
	Correct   int           `json:"correct"`
	Passed    bool          `json:"passed"`
	Incorrect []QuizAttempt `json:"incorrect"`
}

// SessionState is the serializable snapshot of one user's quiz session.
type SessionState struct {
	ID        string        `json:"id"`
	UserID    int64         `json:"user_id"`
	Activity  ActivityType  `json:"activity"`
	Phase     Phase         `json:"phase"`
	Retry     bool          `json:"retry"`
	Questions []Question    `json:"questions"`
	Index     int           `json:"index"`
	Attempts  []QuizAttempt `json:"attempts"`
	Result    *Result       `json:"result,omitempty"`
	Warning   string        `json:"warning,omitempty"`
	StartedAt time.Time     `json:"started_at"`
}

// Live returns the question waiting for an answer.
func (s SessionState) Live() (Question, bool) {
	if s.Phase != PhaseAnswering || s.Index < 0 || s.Index >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.Index], true
}

// StudyState tracks today's word study for one user. A review list never
// completes the day's study.
type StudyState struct {
	UserID    int64                       `json:"user_id"`
	Review    bool                        `json:"review"`
	Words     []Word                      `json:"words"`
	Listened  map[int64]map[Language]bool `json:"listened"`
	Completed bool                        `json:"completed"`
}

// WordDone reports whether both languages of the word were listened to.
func (s StudyState) WordDone(wordID int64) bool {
	l := s.Listened[wordID]
	return l[LangEnglish] && l[LangKorean]
}

func (s StudyState) AllDone() bool {
	if len(s.Words) == 0 {
		return false
	}
	for _, w := range s.Words {
		if !s.WordDone(w.ID) {
			return false
		}
	}
	return true
}
