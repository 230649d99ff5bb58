package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DanRulev/vocamission.git/internal/models"
	mock_repository "github.com/DanRulev/vocamission.git/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResultMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *ResultR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &ResultR{db: db}
}

func TestResultR_AddResult(t *testing.T) {
	t.Parallel()

	record := models.ResultRecord{
		UserID:       1,
		ActivityType: models.ActivityWordQuiz,
		Total:        10,
		Correct:      8,
		Passed:       true,
		Synced:       false,
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(),
					int64(1), models.ActivityWordQuiz, 10, 8, true, false).Return(nil, nil)
			},
			wantErr: false,
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

			resultR := newResultMock(t, ctrl, tt.f)

			err := resultR.AddResult(context.Background(), record)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestResultR_DeleteResultsSince(t *testing.T) {
	t.Parallel()

	since := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resultR := newResultMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(5), models.ActivityOXQuiz, since).Return(nil, nil)
	})

	require.NoError(t, resultR.DeleteResultsSince(context.Background(), 5, models.ActivityOXQuiz, since))
}

func TestResultR_QuizStats(t *testing.T) {
	t.Parallel()

	type args struct {
		ctx    context.Context
		userID int64
	}
	tests := []struct {
		name    string
		args    args
		f       func(*mock_repository.MockQueryI)
		want    models.QuizStats
		wantErr bool
	}{
		{
			name: "success",
			args: args{
				ctx:    context.Background(),
				userID: 1,
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						stats := dest.(*models.QuizStats)
						stats.TotalCount = 4
						stats.RightCount = 3
						return nil
					})
			},
			want: models.QuizStats{
				TotalCount: 4,
				RightCount: 3,
				WrongCount: 1,
			},
			wantErr: false,
		},
		{
			name: "db error",
			args: args{
				ctx:    context.Background(),
				userID: 1,
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			want:    models.QuizStats{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			resultR := newResultMock(t, ctrl, tt.f)

			got, err := resultR.QuizStats(tt.args.ctx, tt.args.userID)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResultR_RecentResults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resultR := newResultMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), int64(1), 5).DoAndReturn(
			func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
				rows := dest.(*[]models.ResultRecord)
				*rows = append(*rows, models.ResultRecord{UserID: 1, ActivityType: models.ActivityExamQuiz, Total: 5, Correct: 4, Passed: true})
				return nil
			})
	})

	got, err := resultR.RecentResults(context.Background(), 1, 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.ActivityExamQuiz, got[0].ActivityType)
}
