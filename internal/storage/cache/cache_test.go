package cache

import (
	"context"
	"testing"
	"time"

	"github.com/DanRulev/vocamission.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Session(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := NewCache(time.Hour)

	_, ok, err := c.GetSession(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	state := models.SessionState{
		ID:       "s1",
		UserID:   1,
		Activity: models.ActivityWordQuiz,
		Phase:    models.PhaseAnswering,
		Attempts: []models.QuizAttempt{{Kind: models.KindWordQuiz, QuestionID: 3, UserAnswer: "3", CorrectAnswer: "3", IsCorrect: true}},
	}
	require.NoError(t, c.SetSession(ctx, 1, state))

	// the stored snapshot does not alias the caller's slices
	state.Attempts[0].IsCorrect = false

	got, ok, err := c.GetSession(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Attempts[0].IsCorrect)
	assert.Equal(t, models.PhaseAnswering, got.Phase)

	require.NoError(t, c.DeleteSession(ctx, 1))
	_, ok, err = c.GetSession(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	c := NewCache(time.Minute)
	c.now = func() time.Time { return now }

	require.NoError(t, c.SetStudy(ctx, 7, models.StudyState{UserID: 7}))
	require.NoError(t, c.GrantRetry(ctx, 7, models.ActivityOXQuiz))

	now = now.Add(2 * time.Minute)

	_, ok, err := c.GetStudy(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok)

	granted, err := c.TakeRetry(ctx, 7, models.ActivityOXQuiz)
	require.NoError(t, err)
	assert.False(t, granted)
}

func TestCache_RetryIsOneShot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := NewCache(0)

	granted, err := c.TakeRetry(ctx, 1, models.ActivityWordQuiz)
	require.NoError(t, err)
	assert.False(t, granted)

	require.NoError(t, c.GrantRetry(ctx, 1, models.ActivityWordQuiz))

	granted, err = c.TakeRetry(ctx, 1, models.ActivityExamQuiz)
	require.NoError(t, err)
	assert.False(t, granted, "grant is per activity")

	granted, err = c.TakeRetry(ctx, 1, models.ActivityWordQuiz)
	require.NoError(t, err)
	assert.True(t, granted)

	granted, err = c.TakeRetry(ctx, 1, models.ActivityWordQuiz)
	require.NoError(t, err)
	assert.False(t, granted)
}
