package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DanRulev/vocamission.git/internal/models"
	"github.com/DanRulev/vocamission.git/internal/repository"
	mock_service "github.com/DanRulev/vocamission.git/internal/service/mock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAccountServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockAccountRI, *mock_service.MockAuthAPII, *mock_service.MockSessionStoreI)) *AccountS {
	api := mock_service.NewMockAuthAPII(ctrl)
	repo := mock_service.NewMockAccountRI(ctrl)
	store := mock_service.NewMockSessionStoreI(ctrl)
	if setupMock != nil {
		setupMock(repo, api, store)
	}
	return NewAccountService(api, repo, store, zap.NewNop())
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "student@example.com",
		"exp": exp.Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return tok
}

func TestAccountS_Login(t *testing.T) {
	t.Parallel()

	type args struct {
		email    string
		password string
	}

	tests := []struct {
		name    string
		args    args
		f       func(*mock_service.MockAccountRI, *mock_service.MockAuthAPII, *mock_service.MockSessionStoreI)
		wantErr bool
	}{
		{
			name: "success",
			args: args{email: "student@example.com", password: "pw"},
			f: func(mr *mock_service.MockAccountRI, ma *mock_service.MockAuthAPII, _ *mock_service.MockSessionStoreI) {
				ma.EXPECT().Login(gomock.Any(), "student@example.com", "pw").Return(models.TokenResponse{AccessToken: testToken, TokenType: "bearer"}, nil)
				ma.EXPECT().Me(gomock.Any(), testToken).Return(models.User{ID: 5, Email: "student@example.com", Role: models.RoleStudent}, nil)
				mr.EXPECT().SaveAccount(gomock.Any(), models.Account{
					UserID:        testUserID,
					BackendUserID: 5,
					Email:         "student@example.com",
					Role:          models.RoleStudent,
					Token:         testToken,
				}).Return(nil)
			},
		},
		{
			name:    "error: invalid email",
			args:    args{email: "not-an-email", password: "pw"},
			wantErr: true,
		},
		{
			name:    "error: empty password",
			args:    args{email: "student@example.com"},
			wantErr: true,
		},
		{
			name: "error: wrong credentials",
			args: args{email: "student@example.com", password: "bad"},
			f: func(_ *mock_service.MockAccountRI, ma *mock_service.MockAuthAPII, _ *mock_service.MockSessionStoreI) {
				ma.EXPECT().Login(gomock.Any(), "student@example.com", "bad").Return(models.TokenResponse{}, errUnauthorized)
			},
			wantErr: true,
		},
		{
			name: "error: save fails",
			args: args{email: "student@example.com", password: "pw"},
			f: func(mr *mock_service.MockAccountRI, ma *mock_service.MockAuthAPII, _ *mock_service.MockSessionStoreI) {
				ma.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.TokenResponse{AccessToken: testToken}, nil)
				ma.EXPECT().Me(gomock.Any(), testToken).Return(models.User{ID: 5}, nil)
				mr.EXPECT().SaveAccount(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
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

			a := newAccountServiceMock(t, ctrl, tt.f)

			user, err := a.Login(context.Background(), testUserID, tt.args.email, tt.args.password)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), user.ID)
		})
	}
}

func TestAccountS_Token(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fresh := signedToken(t, now.Add(time.Hour))
	stale := signedToken(t, now.Add(-time.Minute))

	tests := []struct {
		name    string
		f       func(*mock_service.MockAccountRI, *mock_service.MockAuthAPII, *mock_service.MockSessionStoreI)
		want    string
		wantErr error
	}{
		{
			name: "fresh jwt",
			f: func(mr *mock_service.MockAccountRI, _ *mock_service.MockAuthAPII, _ *mock_service.MockSessionStoreI) {
				mr.EXPECT().Account(gomock.Any(), testUserID).Return(models.Account{Token: fresh}, nil)
			},
			want: fresh,
		},
		{
			name: "opaque token is left to the backend",
			f: func(mr *mock_service.MockAccountRI, _ *mock_service.MockAuthAPII, _ *mock_service.MockSessionStoreI) {
				mr.EXPECT().Account(gomock.Any(), testUserID).Return(models.Account{Token: testToken}, nil)
			},
			want: testToken,
		},
		{
			name: "expired jwt is cleared",
			f: func(mr *mock_service.MockAccountRI, _ *mock_service.MockAuthAPII, _ *mock_service.MockSessionStoreI) {
				mr.EXPECT().Account(gomock.Any(), testUserID).Return(models.Account{Token: stale}, nil)
				mr.EXPECT().ClearToken(gomock.Any(), testUserID).Return(nil)
			},
			wantErr: ErrSessionExpired,
		},
		{
			name: "logged out",
			f: func(mr *mock_service.MockAccountRI, _ *mock_service.MockAuthAPII, _ *mock_service.MockSessionStoreI) {
				mr.EXPECT().Account(gomock.Any(), testUserID).Return(models.Account{}, nil)
			},
			wantErr: ErrSessionExpired,
		},
		{
			name: "never linked",
			f: func(mr *mock_service.MockAccountRI, _ *mock_service.MockAuthAPII, _ *mock_service.MockSessionStoreI) {
				mr.EXPECT().Account(gomock.Any(), testUserID).Return(models.Account{}, repository.ErrAccountNotFound)
			},
			wantErr: ErrNotLinked,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a := newAccountServiceMock(t, ctrl, tt.f)
			a.now = func() time.Time { return now }

			got, err := a.Token(context.Background(), testUserID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountS_Me(t *testing.T) {
	t.Parallel()

	t.Run("role is refreshed", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a := newAccountServiceMock(t, ctrl, func(mr *mock_service.MockAccountRI, ma *mock_service.MockAuthAPII, _ *mock_service.MockSessionStoreI) {
			mr.EXPECT().Account(gomock.Any(), testUserID).Return(models.Account{Token: testToken, Role: models.RoleStudent}, nil)
			ma.EXPECT().Me(gomock.Any(), testToken).Return(models.User{ID: 5, Role: models.RoleTeacher}, nil)
			mr.EXPECT().UpdateRole(gomock.Any(), testUserID, models.RoleTeacher).Return(nil)
		})

		user, err := a.Me(context.Background(), testUserID)
		require.NoError(t, err)
		assert.Equal(t, models.RoleTeacher, user.Role)
	})

	t.Run("unauthorized invalidates token", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a := newAccountServiceMock(t, ctrl, func(mr *mock_service.MockAccountRI, ma *mock_service.MockAuthAPII, _ *mock_service.MockSessionStoreI) {
			mr.EXPECT().Account(gomock.Any(), testUserID).Return(models.Account{Token: testToken}, nil)
			ma.EXPECT().Me(gomock.Any(), testToken).Return(models.User{}, errUnauthorized)
			mr.EXPECT().ClearToken(gomock.Any(), testUserID).Return(nil)
		})

		_, err := a.Me(context.Background(), testUserID)
		assert.ErrorIs(t, err, ErrSessionExpired)
	})
}

func TestAccountS_Logout(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newAccountServiceMock(t, ctrl, func(mr *mock_service.MockAccountRI, _ *mock_service.MockAuthAPII, ms *mock_service.MockSessionStoreI) {
		ms.EXPECT().DeleteSession(gomock.Any(), testUserID).Return(errors.New("redis down"))
		ms.EXPECT().DeleteStudy(gomock.Any(), testUserID).Return(nil)
		mr.EXPECT().ClearToken(gomock.Any(), testUserID).Return(nil)
	})

	require.NoError(t, a.Logout(context.Background(), testUserID))
}

func TestAccountS_SetWordGoal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	goal := 30
	a := newAccountServiceMock(t, ctrl, func(mr *mock_service.MockAccountRI, ma *mock_service.MockAuthAPII, _ *mock_service.MockSessionStoreI) {
		mr.EXPECT().Account(gomock.Any(), testUserID).Return(models.Account{Token: testToken}, nil)
		ma.EXPECT().UpdateMe(gomock.Any(), testToken, models.UserUpdate{DailyWordGoal: &goal}).Return(models.User{DailyWordGoal: goal}, nil)
	})

	user, err := a.SetWordGoal(context.Background(), testUserID, goal)
	require.NoError(t, err)
	assert.Equal(t, goal, user.DailyWordGoal)

	_, err = a.SetWordGoal(context.Background(), testUserID, 0)
	assert.Error(t, err)
}
