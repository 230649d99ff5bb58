package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/DanRulev/vocamission.git/internal/models"
)

func (b *BackendAPI) TodayStatus(ctx context.Context, token string) (models.TodayActivityStatus, error) {
	var out models.TodayActivityStatus
	err := b.do(ctx, request{method: http.MethodGet, path: "/today-status", token: token}, &out)
	return out, err
}

func (b *BackendAPI) CompletionStatus(ctx context.Context, token string, activity models.ActivityType) (models.CompletionStatus, error) {
	q := url.Values{}
	q.Set("activity_type", string(activity))

	var out models.CompletionStatus
	err := b.do(ctx, request{method: http.MethodGet, path: "/quiz/completion-status", token: token, query: q}, &out)
	return out, err
}

func (b *BackendAPI) MarkStudyCompleted(ctx context.Context, token string) (models.DailyActivityLog, error) {
	var out models.DailyActivityLog
	err := b.do(ctx, request{
		method: http.MethodPost,
		path:   "/activity/study-complete",
		token:  token,
		body:   models.CompletionRequest{ActivityType: models.ActivityWordStudy},
	}, &out)
	return out, err
}

// ResetCompletion deletes today's completion record of the activity.
func (b *BackendAPI) ResetCompletion(ctx context.Context, token string, activity models.ActivityType) error {
	q := url.Values{}
	q.Set("activity_type", string(activity))

	return b.do(ctx, request{method: http.MethodDelete, path: "/quiz/reset-completion", token: token, query: q}, nil)
}
