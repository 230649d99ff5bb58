package client

import (
	"context"
	"net/http"

	"github.com/DanRulev/vocamission.git/internal/models"
)

func (b *BackendAPI) DailyExamSet(ctx context.Context, token string) ([]models.ExamQuestion, error) {
	var out []models.ExamQuestion
	err := b.do(ctx, request{method: http.MethodGet, path: "/exam/daily-set", token: token}, &out)
	return out, err
}

func (b *BackendAPI) SubmitExam(ctx context.Context, token string, submission models.ExamSubmission) error {
	return b.do(ctx, request{method: http.MethodPost, path: "/exam/submit-details", token: token, body: submission}, nil)
}

func (b *BackendAPI) TodayExamAttempts(ctx context.Context, token string) ([]models.UserGrammarAttempt, error) {
	var out []models.UserGrammarAttempt
	err := b.do(ctx, request{method: http.MethodGet, path: "/exam/attempts/today", token: token}, &out)
	return out, err
}
