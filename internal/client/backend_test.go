package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanRulev/vocamission.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T, h http.HandlerFunc) *BackendAPI {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return NewBackendAPI(srv.URL+"/", 5*time.Second)
}

func TestBackendAPI_TodayStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		want    models.TodayActivityStatus
		wantErr error
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"word_study":true,"word_quiz":false,"exam_quiz":true}`,
			want:   models.TodayActivityStatus{WordStudy: true, ExamQuiz: true},
		},
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"detail":"Could not validate credentials"}`,
			wantErr: ErrUnauthorized,
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{"detail":"Not Found"}`,
			wantErr: ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/today-status", r.URL.Path)
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			got, err := api.TodayStatus(context.Background(), "tok")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBackendAPI_Login(t *testing.T) {
	t.Parallel()

	api := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login/token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "kim@school.kr", r.PostForm.Get("username"))
		assert.Equal(t, "pw", r.PostForm.Get("password"))
		_, _ = io.WriteString(w, `{"access_token":"abc","token_type":"bearer"}`)
	})

	got, err := api.Login(context.Background(), "kim@school.kr", "pw")
	require.NoError(t, err)
	assert.Equal(t, "abc", got.AccessToken)
}

func TestBackendAPI_SubmitQuizDetails(t *testing.T) {
	t.Parallel()

	submission := models.QuizSubmission{
		ActivityType:   models.ActivityWordQuiz,
		TotalQuestions: 2,
		CorrectCount:   1,
		Details: []models.AttemptDetail{
			{QuestionWordID: 1, IsCorrect: true, UserAnswer: "사과", CorrectAnswer: "사과", QuizType: models.KindWordQuiz},
			{QuestionWordID: 2, IsCorrect: false, UserAnswer: "배", CorrectAnswer: "바나나", QuizType: models.KindWordQuiz},
		},
	}

	api := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/quiz/submit-details", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got models.QuizSubmission
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, submission, got)
		w.WriteHeader(http.StatusCreated)
	})

	require.NoError(t, api.SubmitQuizDetails(context.Background(), "tok", submission))
}

func TestBackendAPI_ResetCompletion(t *testing.T) {
	t.Parallel()

	api := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/quiz/reset-completion", r.URL.Path)
		assert.Equal(t, "word_quiz", r.URL.Query().Get("activity_type"))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, api.ResetCompletion(context.Background(), "tok", models.ActivityWordQuiz))
}

func TestBackendAPI_DailyExamSet(t *testing.T) {
	t.Parallel()

	api := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/exam/daily-set", r.URL.Path)
		_, _ = io.WriteString(w, `[
			{"id":7,"question_type":"MC","question_text":"Pick one","choices":[{"id":1,"text":"is"},{"id":"2","text":"are"}],"correct_answer":"2"},
			{"id":8,"question_type":"CONSTRUCT","question_text":"Order","scrambled_words":["cat","the","sat"],"correct_answer":"the cat sat"}
		]`)
	})

	got, err := api.DailyExamSet(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.Token("1"), got[0].Choices[0].ID)
	assert.Equal(t, models.Token("2"), got[0].Choices[1].ID)
	assert.Nil(t, got[1].Choices)
	assert.Equal(t, []string{"cat", "the", "sat"}, got[1].ScrambledWords)
}

func TestBackendAPI_ServerError(t *testing.T) {
	t.Parallel()

	api := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"detail":[{"loc":["body","count"],"msg":"field required"},{"msg":"bad value"}]}`)
	})

	_, err := api.OXSet(context.Background(), "tok", 10)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "field required\nbad value", apiErr.Message)
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func Test_errorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "detail string", status: 400, body: `{"detail":"Email already registered"}`, want: "Email already registered"},
		{name: "detail object", status: 400, body: `{"detail":{"msg":"nope"}}`, want: "nope"},
		{name: "message key", status: 400, body: `{"message":"broken"}`, want: "broken"},
		{name: "error key", status: 400, body: `{"error":"boom"}`, want: "boom"},
		{name: "plain text", status: 502, body: "bad gateway", want: "bad gateway"},
		{name: "empty body", status: 503, body: "", want: "Service Unavailable"},
		{name: "unknown object", status: 400, body: `{"code":3}`, want: `{"code":3}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, errorMessage(tt.status, []byte(tt.body)))
		})
	}
}
