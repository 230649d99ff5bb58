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

func TestDashboardS_Dashboard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_service.MockRepositoryI, *mock_service.MockAPII)
		want    map[models.ActivityType]GateState
		wantErr error
	}{
		{
			name: "success",
			f: func(mr *mock_service.MockRepositoryI, ma *mock_service.MockAPII) {
				linked(mr, models.RoleStudent)
				ma.EXPECT().Me(gomock.Any(), testToken).Return(models.User{ID: 5, Role: models.RoleStudent, DailyWordGoal: 20}, nil)
				mr.EXPECT().UpdateRole(gomock.Any(), testUserID, models.RoleStudent).Return(nil)
				ma.EXPECT().TodayStatus(gomock.Any(), testToken).Return(models.TodayActivityStatus{WordStudy: true}, nil)
				ma.EXPECT().CompletionStatus(gomock.Any(), testToken, models.ActivityOXQuiz).Return(models.CompletionStatus{CompletedToday: true}, nil)
			},
			want: map[models.ActivityType]GateState{
				models.ActivityWordStudy: GateCompleted,
				models.ActivityWordQuiz:  GateAvailable,
				models.ActivityOXQuiz:    GateCompleted,
				models.ActivityExamQuiz:  GateLocked,
			},
		},
		{
			name: "status outage offers everything",
			f: func(mr *mock_service.MockRepositoryI, ma *mock_service.MockAPII) {
				linked(mr, models.RoleStudent)
				ma.EXPECT().Me(gomock.Any(), testToken).Return(models.User{ID: 5, Role: models.RoleStudent, DailyWordGoal: 20}, nil)
				mr.EXPECT().UpdateRole(gomock.Any(), testUserID, models.RoleStudent).Return(nil)
				ma.EXPECT().TodayStatus(gomock.Any(), testToken).Return(models.TodayActivityStatus{}, errBackendDown)
				ma.EXPECT().CompletionStatus(gomock.Any(), testToken, models.ActivityOXQuiz).Return(models.CompletionStatus{}, nil)
			},
			want: map[models.ActivityType]GateState{
				models.ActivityWordStudy: GateAvailable,
				models.ActivityWordQuiz:  GateAvailable,
				models.ActivityOXQuiz:    GateAvailable,
				models.ActivityExamQuiz:  GateAvailable,
			},
		},
		{
			name: "error: session expired",
			f: func(mr *mock_service.MockRepositoryI, ma *mock_service.MockAPII) {
				linked(mr, models.RoleStudent)
				ma.EXPECT().Me(gomock.Any(), testToken).Return(models.User{}, errUnauthorized)
				ma.EXPECT().TodayStatus(gomock.Any(), testToken).Return(models.TodayActivityStatus{}, errUnauthorized).AnyTimes()
				mr.EXPECT().ClearToken(gomock.Any(), testUserID).Return(nil).MinTimes(1)
			},
			wantErr: ErrSessionExpired,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, _ := newServiceMock(t, ctrl, tt.f)

			got, err := s.Dashboard(context.Background(), testUserID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 20, got.User.DailyWordGoal)
			assert.Equal(t, tt.want, got.Gates)
		})
	}
}
