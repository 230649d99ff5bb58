package service

import (
	"context"
	"testing"

	"github.com/DanRulev/vocamission.git/internal/client"
	"github.com/DanRulev/vocamission.git/internal/models"
	mock_service "github.com/DanRulev/vocamission.git/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStatusServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockActivityAPII)) *StatusS {
	api := mock_service.NewMockActivityAPII(ctrl)
	if setupMock != nil {
		setupMock(api)
	}
	return NewStatusService(api, zap.NewNop())
}

func TestStatusS_TodayStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_service.MockActivityAPII)
		want    models.TodayActivityStatus
		wantErr error
	}{
		{
			name: "success",
			f: func(ma *mock_service.MockActivityAPII) {
				ma.EXPECT().TodayStatus(gomock.Any(), testToken).Return(models.TodayActivityStatus{WordStudy: true}, nil)
			},
			want: models.TodayActivityStatus{WordStudy: true},
		},
		{
			name: "backend error degrades to all false",
			f: func(ma *mock_service.MockActivityAPII) {
				ma.EXPECT().TodayStatus(gomock.Any(), testToken).Return(models.TodayActivityStatus{WordStudy: true}, errBackendDown)
			},
			want: models.TodayActivityStatus{},
		},
		{
			name: "not found degrades to all false",
			f: func(ma *mock_service.MockActivityAPII) {
				ma.EXPECT().TodayStatus(gomock.Any(), testToken).Return(models.TodayActivityStatus{}, errNotFound)
			},
			want: models.TodayActivityStatus{},
		},
		{
			name: "unauthorized is surfaced",
			f: func(ma *mock_service.MockActivityAPII) {
				ma.EXPECT().TodayStatus(gomock.Any(), testToken).Return(models.TodayActivityStatus{}, errUnauthorized)
			},
			wantErr: client.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newStatusServiceMock(t, ctrl, tt.f)

			got, err := s.TodayStatus(context.Background(), testToken)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusS_Snapshot(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newStatusServiceMock(t, ctrl, func(ma *mock_service.MockActivityAPII) {
		ma.EXPECT().TodayStatus(gomock.Any(), testToken).Return(models.TodayActivityStatus{WordStudy: true, WordQuiz: true}, nil)
		ma.EXPECT().CompletionStatus(gomock.Any(), testToken, models.ActivityOXQuiz).Return(models.CompletionStatus{}, errBackendDown)
	})

	snap, err := s.Snapshot(context.Background(), testToken, models.ActivityWordQuiz, models.ActivityOXQuiz)
	require.NoError(t, err)
	assert.Equal(t, map[models.ActivityType]bool{
		models.ActivityWordStudy: true,
		models.ActivityWordQuiz:  true,
		models.ActivityExamQuiz:  false,
		models.ActivityOXQuiz:    false,
	}, snap.Done)
	assert.Equal(t, map[models.ActivityType]bool{models.ActivityOXQuiz: true}, snap.Stale)
	assert.True(t, snap.Degraded())
}

func TestStatusS_Snapshot_Fallback(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newStatusServiceMock(t, ctrl, func(ma *mock_service.MockActivityAPII) {
		ma.EXPECT().TodayStatus(gomock.Any(), testToken).Return(models.TodayActivityStatus{}, errBackendDown)
	})

	snap, err := s.Snapshot(context.Background(), testToken, models.ActivityWordQuiz)
	require.NoError(t, err)
	assert.False(t, snap.Done[models.ActivityWordStudy])
	assert.True(t, snap.Stale[models.ActivityWordStudy])
	assert.True(t, snap.Stale[models.ActivityWordQuiz])
	assert.True(t, snap.Stale[models.ActivityExamQuiz])
	assert.Equal(t, GateAvailable, Gate(snap, models.ActivityWordQuiz, false))
}

func TestStatusS_CompletedToday(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newStatusServiceMock(t, ctrl, func(ma *mock_service.MockActivityAPII) {
		ma.EXPECT().CompletionStatus(gomock.Any(), testToken, models.ActivityOXQuiz).Return(models.CompletionStatus{CompletedToday: true}, nil)
		ma.EXPECT().CompletionStatus(gomock.Any(), testToken, models.ActivityOXQuiz).Return(models.CompletionStatus{}, errUnauthorized)
	})

	done, err := s.CompletedToday(context.Background(), testToken, models.ActivityOXQuiz)
	require.NoError(t, err)
	assert.True(t, done)

	_, err = s.CompletedToday(context.Background(), testToken, models.ActivityOXQuiz)
	assert.ErrorIs(t, err, client.ErrUnauthorized)
}
