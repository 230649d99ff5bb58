package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanRulev/vocamission.git/internal/client"
	"github.com/DanRulev/vocamission.git/internal/models"
	"github.com/DanRulev/vocamission.git/internal/repository"
	"github.com/DanRulev/vocamission.git/pkg/validator"
	"go.uber.org/zap"
)

type AccountS struct {
	api   AuthAPII
	repo  AccountRI
	store SessionStoreI
	log   *zap.Logger
	now   func() time.Time
}

func NewAccountService(api AuthAPII, repo AccountRI, store SessionStoreI, log *zap.Logger) *AccountS {
	return &AccountS{
		api:   api,
		repo:  repo,
		store: store,
		log:   log,
		now:   time.Now,
	}
}

func validateCredentials(email, password string) error {
	if err := validator.ValidateVar("email", email, "required,email"); err != nil {
		return err
	}
	return validator.ValidateVar("password", password, "required")
}

// Login exchanges credentials for a token and links the backend account to
// the Telegram user.
func (a *AccountS) Login(ctx context.Context, userID int64, email, password string) (models.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return models.User{}, err
	}

	tok, err := a.api.Login(ctx, email, password)
	if err != nil {
		return models.User{}, fmt.Errorf("login failed: %w", err)
	}
	if tok.AccessToken == "" {
		return models.User{}, errors.New("login failed: empty access token")
	}

	user, err := a.api.Me(ctx, tok.AccessToken)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to load profile: %w", err)
	}

	err = a.repo.SaveAccount(ctx, models.Account{
		UserID:        userID,
		BackendUserID: user.ID,
		Email:         user.Email,
		Role:          user.Role,
		Token:         tok.AccessToken,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("failed to save account: %w", err)
	}

	a.log.Info("account linked", zap.Int64("user_id", userID), zap.Int64("backend_user_id", user.ID))
	return user, nil
}

// Register creates a backend account and logs in with it.
func (a *AccountS) Register(ctx context.Context, userID int64, email, password string) (models.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return models.User{}, err
	}

	if _, err := a.api.Register(ctx, email, password); err != nil {
		return models.User{}, fmt.Errorf("signup failed: %w", err)
	}

	return a.Login(ctx, userID, email, password)
}

// Logout forgets the token and every transient state of the user.
func (a *AccountS) Logout(ctx context.Context, userID int64) error {
	if err := a.store.DeleteSession(ctx, userID); err != nil {
		a.log.Warn("failed to drop session on logout", zap.Int64("user_id", userID), zap.Error(err))
	}
	if err := a.store.DeleteStudy(ctx, userID); err != nil {
		a.log.Warn("failed to drop study on logout", zap.Int64("user_id", userID), zap.Error(err))
	}
	return a.repo.ClearToken(ctx, userID)
}

// Token returns the user's access token, rejecting tokens that are known to
// be expired.
func (a *AccountS) Token(ctx context.Context, userID int64) (string, error) {
	account, err := a.repo.Account(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", ErrNotLinked
		}
		return "", err
	}
	if account.Token == "" {
		return "", ErrSessionExpired
	}
	if client.TokenExpired(account.Token, a.now()) {
		a.expire(ctx, userID)
		return "", ErrSessionExpired
	}
	return account.Token, nil
}

func (a *AccountS) Role(ctx context.Context, userID int64) (models.Role, error) {
	account, err := a.repo.Account(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", ErrNotLinked
		}
		return "", err
	}
	return account.Role, nil
}

// Me refreshes the profile and keeps the cached role in sync.
func (a *AccountS) Me(ctx context.Context, userID int64) (models.User, error) {
	token, err := a.Token(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.api.Me(ctx, token)
	if err != nil {
		return models.User{}, a.authErr(ctx, userID, err)
	}

	if err := a.repo.UpdateRole(ctx, userID, user.Role); err != nil {
		a.log.Warn("failed to update cached role", zap.Int64("user_id", userID), zap.Error(err))
	}
	return user, nil
}

func (a *AccountS) SetWordGoal(ctx context.Context, userID int64, goal int) (models.User, error) {
	if err := validator.ValidateVar("daily_word_goal", goal, "min=1,max=200"); err != nil {
		return models.User{}, err
	}
	token, err := a.Token(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.api.UpdateMe(ctx, token, models.UserUpdate{DailyWordGoal: &goal})
	if err != nil {
		return models.User{}, a.authErr(ctx, userID, err)
	}
	return user, nil
}

func (a *AccountS) expire(ctx context.Context, userID int64) {
	if err := a.repo.ClearToken(ctx, userID); err != nil {
		a.log.Warn("failed to clear token", zap.Int64("user_id", userID), zap.Error(err))
		return
	}
	a.log.Info("session invalidated", zap.Int64("user_id", userID))
}

// authErr turns a backend 401 into ErrSessionExpired and forgets the token.
func (a *AccountS) authErr(ctx context.Context, userID int64, err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		a.expire(ctx, userID)
		return ErrSessionExpired
	}
	return err
}
