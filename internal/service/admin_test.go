package service

import (
	"context"
	"testing"

	"github.com/DanRulev/vocamission.git/internal/models"
	mock_service "github.com/DanRulev/vocamission.git/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminS_Users(t *testing.T) {
	t.Parallel()

	type args struct {
		role models.Role
		page int
	}

	tests := []struct {
		name    string
		args    args
		f       func(*mock_service.MockRepositoryI, *mock_service.MockAPII)
		wantErr error
		anyErr  bool
	}{
		{
			name: "teacher lists second page",
			args: args{role: models.RoleStudent, page: 2},
			f: func(mr *mock_service.MockRepositoryI, ma *mock_service.MockAPII) {
				linked(mr, models.RoleTeacher)
				ma.EXPECT().Users(gomock.Any(), testToken, models.RoleStudent, AdminPageSize, AdminPageSize).Return(models.UserPage{TotalCount: 12}, nil)
			},
		},
		{
			name: "page below one starts at the first page",
			args: args{page: 0},
			f: func(mr *mock_service.MockRepositoryI, ma *mock_service.MockAPII) {
				linked(mr, models.RoleAdmin)
				ma.EXPECT().Users(gomock.Any(), testToken, models.Role(""), 0, AdminPageSize).Return(models.UserPage{}, nil)
			},
		},
		{
			name: "student is forbidden",
			args: args{page: 1},
			f: func(mr *mock_service.MockRepositoryI, _ *mock_service.MockAPII) {
				linked(mr, models.RoleStudent)
			},
			wantErr: ErrForbidden,
		},
		{
			name:   "unknown role filter",
			args:   args{role: "owner", page: 1},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, _ := newServiceMock(t, ctrl, tt.f)

			_, err := s.Users(context.Background(), testUserID, tt.args.role, tt.args.page)
			switch {
			case tt.anyErr:
				require.Error(t, err)
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestAdminS_SetRole(t *testing.T) {
	t.Parallel()

	t.Run("admin", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, _ := newServiceMock(t, ctrl, func(mr *mock_service.MockRepositoryI, ma *mock_service.MockAPII) {
			linked(mr, models.RoleAdmin)
			ma.EXPECT().UpdateUserRole(gomock.Any(), testToken, int64(9), models.RoleTeacher).Return(models.User{ID: 9, Role: models.RoleTeacher}, nil)
		})

		user, err := s.SetRole(context.Background(), testUserID, 9, models.RoleTeacher)
		require.NoError(t, err)
		assert.Equal(t, models.RoleTeacher, user.Role)
	})

	t.Run("teacher cannot change roles", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, _ := newServiceMock(t, ctrl, func(mr *mock_service.MockRepositoryI, _ *mock_service.MockAPII) {
			linked(mr, models.RoleTeacher)
		})

		_, err := s.SetRole(context.Background(), testUserID, 9, models.RoleAdmin)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestAdminS_SetGoals(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	goals := models.Goals{DailyWordGoal: 20, DailyExamGoal: 5}
	s, _ := newServiceMock(t, ctrl, func(mr *mock_service.MockRepositoryI, ma *mock_service.MockAPII) {
		linked(mr, models.RoleTeacher)
		ma.EXPECT().UpdateUserGoals(gomock.Any(), testToken, int64(9), goals).Return(models.User{ID: 9, DailyWordGoal: 20, DailyExamGoal: 5}, nil)
	})

	user, err := s.SetGoals(context.Background(), testUserID, 9, goals)
	require.NoError(t, err)
	assert.Equal(t, 5, user.DailyExamGoal)

	_, err = s.SetGoals(context.Background(), testUserID, 9, models.Goals{DailyWordGoal: 0, DailyExamGoal: 5})
	assert.Error(t, err)
}

func TestReviewS_WrongNote(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newServiceMock(t, ctrl, func(mr *mock_service.MockRepositoryI, ma *mock_service.MockAPII) {
		linked(mr, models.RoleStudent)
		ma.EXPECT().WrongAnswers(gomock.Any(), testToken, WrongNoteLimit).Return([]models.WrongAnswer{{ID: 1, UserAnswer: "a", CorrectAnswer: "b"}}, nil)
		ma.EXPECT().WrongAnswers(gomock.Any(), testToken, WrongNoteLimit).Return(nil, errNotFound)
	})
	ctx := context.Background()

	got, err := s.WrongNote(ctx, testUserID)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = s.WrongNote(ctx, testUserID)
	require.NoError(t, err)
	assert.Empty(t, got)
}
