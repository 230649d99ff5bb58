package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DanRulev/vocamission.git/internal/models"
)

func (b *BackendAPI) MultipleChoiceSet(ctx context.Context, token string, count int) ([]models.MultipleChoiceQuiz, error) {
	var out []models.MultipleChoiceQuiz
	err := b.do(ctx, request{
		method: http.MethodPost,
		path:   "/quiz/multiple-choice-set",
		token:  token,
		body:   models.QuizSetRequest{Count: count},
	}, &out)
	return out, err
}

func (b *BackendAPI) OXSet(ctx context.Context, token string, count int) ([]models.OXQuiz, error) {
	var out []models.OXQuiz
	err := b.do(ctx, request{
		method: http.MethodPost,
		path:   "/quiz/ox-test-set",
		token:  token,
		body:   models.QuizSetRequest{Count: count},
	}, &out)
	return out, err
}

func (b *BackendAPI) SubmitQuizDetails(ctx context.Context, token string, submission models.QuizSubmission) error {
	return b.do(ctx, request{method: http.MethodPost, path: "/quiz/submit-details", token: token, body: submission}, nil)
}

func (b *BackendAPI) WrongAnswers(ctx context.Context, token string, limit int) ([]models.WrongAnswer, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var out []models.WrongAnswer
	err := b.do(ctx, request{method: http.MethodGet, path: "/quiz/wrong-answers", token: token, query: q}, &out)
	return out, err
}
