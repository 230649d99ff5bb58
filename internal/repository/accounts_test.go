package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DanRulev/vocamission.git/internal/models"
	mock_repository "github.com/DanRulev/vocamission.git/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *AccountR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &AccountR{db: db}
}

func TestAccountR_SaveAccount(t *testing.T) {
	t.Parallel()

	account := models.Account{UserID: 42, BackendUserID: 7, Email: "kim@school.kr", Role: models.RoleStudent, Token: "tok"}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(),
					int64(42), int64(7), "kim@school.kr", models.RoleStudent, "tok").Return(nil, nil)
			},
		},
		{
			name: "failed exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountR := newAccountMock(t, ctrl, tt.f)

			err := accountR.SaveAccount(context.Background(), account)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestAccountR_Account(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.Account
		wantErr error
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), int64(42)).DoAndReturn(
					func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*models.Account) = models.Account{UserID: 42, Email: "kim@school.kr", Token: "tok"}
						return nil
					})
			},
			want: models.Account{UserID: 42, Email: "kim@school.kr", Token: "tok"},
		},
		{
			name: "not linked",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
			wantErr: ErrAccountNotFound,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("conn reset"))
			},
			wantErr: errors.New("database error: conn reset"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountR := newAccountMock(t, ctrl, tt.f)

			got, err := accountR.Account(context.Background(), 42)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountR_ClearToken(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountR := newAccountMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(42)).Return(nil, nil)
	})

	require.NoError(t, accountR.ClearToken(context.Background(), 42))
}
