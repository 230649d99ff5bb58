package service

import (
	"context"
	"errors"

	"github.com/DanRulev/vocamission.git/internal/client"
	"github.com/DanRulev/vocamission.git/internal/models"
	"go.uber.org/zap"
)

const WrongNoteLimit = 50

type ReviewS struct {
	api     QuizAPII
	account *AccountS
	log     *zap.Logger
}

func NewReviewService(api QuizAPII, account *AccountS, log *zap.Logger) *ReviewS {
	return &ReviewS{api: api, account: account, log: log}
}

// WrongNote returns the most recent incorrect attempts. No history is not an
// error.
func (r *ReviewS) WrongNote(ctx context.Context, userID int64) ([]models.WrongAnswer, error) {
	token, err := r.account.Token(ctx, userID)
	if err != nil {
		return nil, err
	}

	wrong, err := r.api.WrongAnswers(ctx, token, WrongNoteLimit)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return []models.WrongAnswer{}, nil
		}
		r.log.Warn("failed to load wrong answers", zap.Int64("user_id", userID), zap.Error(err))
		return nil, r.account.authErr(ctx, userID, err)
	}
	return wrong, nil
}
