package service

import (
	"context"
	"fmt"

	"github.com/DanRulev/vocamission.git/internal/models"
	"github.com/DanRulev/vocamission.git/pkg/validator"
	"go.uber.org/zap"
)

const AdminPageSize = 10

type AdminS struct {
	api     AdminAPII
	account *AccountS
	log     *zap.Logger
}

func NewAdminService(api AdminAPII, account *AccountS, log *zap.Logger) *AdminS {
	return &AdminS{api: api, account: account, log: log}
}

// authorize returns the caller's token when the cached role satisfies allow.
// The backend still enforces its own rules.
func (a *AdminS) authorize(ctx context.Context, userID int64, allow func(models.Role) bool) (string, error) {
	role, err := a.account.Role(ctx, userID)
	if err != nil {
		return "", err
	}
	if !allow(role) {
		return "", ErrForbidden
	}
	return a.account.Token(ctx, userID)
}

func isAdmin(r models.Role) bool { return r == models.RoleAdmin }

// Users lists accounts page by page, optionally filtered by role. Pages
// start at 1.
func (a *AdminS) Users(ctx context.Context, userID int64, role models.Role, page int) (models.UserPage, error) {
	if role != "" && !role.Valid() {
		return models.UserPage{}, fmt.Errorf("unknown role %q", role)
	}
	if page < 1 {
		page = 1
	}

	token, err := a.authorize(ctx, userID, models.Role.CanManage)
	if err != nil {
		return models.UserPage{}, err
	}

	users, err := a.api.Users(ctx, token, role, (page-1)*AdminPageSize, AdminPageSize)
	if err != nil {
		return models.UserPage{}, a.account.authErr(ctx, userID, err)
	}
	return users, nil
}

func (a *AdminS) SetRole(ctx context.Context, userID, targetID int64, role models.Role) (models.User, error) {
	if !role.Valid() {
		return models.User{}, fmt.Errorf("unknown role %q", role)
	}

	token, err := a.authorize(ctx, userID, isAdmin)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.api.UpdateUserRole(ctx, token, targetID, role)
	if err != nil {
		return models.User{}, a.account.authErr(ctx, userID, err)
	}

	a.log.Info("role changed", zap.Int64("by", userID), zap.Int64("target", targetID), zap.String("role", string(role)))
	return user, nil
}

func (a *AdminS) SetGoals(ctx context.Context, userID, targetID int64, goals models.Goals) (models.User, error) {
	if err := validator.ValidateStruct(goals); err != nil {
		return models.User{}, err
	}

	token, err := a.authorize(ctx, userID, models.Role.CanManage)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.api.UpdateUserGoals(ctx, token, targetID, goals)
	if err != nil {
		return models.User{}, a.account.authErr(ctx, userID, err)
	}

	a.log.Info("goals changed", zap.Int64("by", userID), zap.Int64("target", targetID))
	return user, nil
}
