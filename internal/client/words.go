package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DanRulev/vocamission.git/internal/models"
)

func (b *BackendAPI) TodayWords(ctx context.Context, token string, review bool) ([]models.Word, error) {
	q := url.Values{}
	q.Set("is_review", strconv.FormatBool(review))

	var out []models.Word
	err := b.do(ctx, request{method: http.MethodGet, path: "/words/today", token: token, query: q}, &out)
	return out, err
}

func (b *BackendAPI) RecordListen(ctx context.Context, token string, wordID int64, lang models.Language) error {
	return b.do(ctx, request{
		method: http.MethodPost,
		path:   "/words/" + strconv.FormatInt(wordID, 10) + "/listen",
		token:  token,
		body:   models.ListenAction{Language: lang},
	}, nil)
}
