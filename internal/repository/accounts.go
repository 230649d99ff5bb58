package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DanRulev/vocamission.git/internal/models"
)

var ErrAccountNotFound = errors.New("account not found")

type AccountR struct {
	db QueryI
}

func NewAccountRepository(db QueryI) *AccountR {
	return &AccountR{db: db}
}

func (a *AccountR) SaveAccount(ctx context.Context, account models.Account) error {
	query := `INSERT INTO accounts (user_id, backend_user_id, email, role, token, linked_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET
			backend_user_id = EXCLUDED.backend_user_id,
			email = EXCLUDED.email,
			role = EXCLUDED.role,
			token = EXCLUDED.token,
			linked_at = NOW()
		`
	_, err := a.db.ExecContext(ctx, query, account.UserID, account.BackendUserID, account.Email, account.Role, account.Token)
	if err != nil {
		return err
	}

	return nil
}

func (a *AccountR) Account(ctx context.Context, userID int64) (models.Account, error) {
	query := `
	SELECT user_id, backend_user_id, email, role, token, linked_at
		FROM accounts
		WHERE user_id = $1
	`

	var account models.Account
	err := a.db.GetContext(ctx, &account, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		return models.Account{}, fmt.Errorf("database error: %w", err)
	}
	return account, nil
}

// ClearToken keeps the link but forgets the access token.
func (a *AccountR) ClearToken(ctx context.Context, userID int64) error {
	_, err := a.db.ExecContext(ctx, `UPDATE accounts SET token = '' WHERE user_id = $1`, userID)
	return err
}

func (a *AccountR) UpdateRole(ctx context.Context, userID int64, role models.Role) error {
	_, err := a.db.ExecContext(ctx, `UPDATE accounts SET role = $2 WHERE user_id = $1`, userID, role)
	return err
}
