package models

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// CanManage reports whether the role may use the management commands.
func (r Role) CanManage() bool {
	return r == RoleTeacher || r == RoleAdmin
}

type User struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	Role          Role   `json:"role"`
	DailyWordGoal int    `json:"daily_word_goal"`
	DailyExamGoal int    `json:"daily_exam_goal"`
}

type UserUpdate struct {
	DailyWordGoal *int `json:"daily_word_goal,omitempty"`
	DailyExamGoal *int `json:"daily_exam_goal,omitempty"`
}

type Goals struct {
	DailyWordGoal int `json:"daily_word_goal" validate:"min=1,max=200"`
	DailyExamGoal int `json:"daily_exam_goal" validate:"min=1,max=100"`
}

type UserPage struct {
	Users      []User `json:"users"`
	TotalCount int    `json:"total_count"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Account links a Telegram user to a backend account.
type Account struct {
	UserID        int64     `db:"user_id"`
	BackendUserID int64     `db:"backend_user_id"`
	Email         string    `db:"email"`
	Role          Role      `db:"role"`
	Token         string    `db:"token"`
	LinkedAt      time.Time `db:"linked_at"`
}
