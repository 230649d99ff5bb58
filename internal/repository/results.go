package repository

import (
	"context"
	"time"

	"github.com/DanRulev/vocamission.git/internal/models"
)

type ResultR struct {
	db QueryI
}

func NewResultRepository(db QueryI) *ResultR {
	return &ResultR{
		db: db,
	}
}

func (q *ResultR) AddResult(ctx context.Context, result models.ResultRecord) error {
	query := `
        INSERT INTO quiz_results (user_id, activity_type, total, correct, passed, synced)
        VALUES ($1, $2, $3, $4, $5, $6)
    `

	_, err := q.db.ExecContext(ctx, query, result.UserID, result.ActivityType, result.Total, result.Correct, result.Passed, result.Synced)
	if err != nil {
		return err
	}

	return nil
}

// DeleteResultsSince drops the local results of one activity recorded at or
// after since.
func (q *ResultR) DeleteResultsSince(ctx context.Context, userID int64, activity models.ActivityType, since time.Time) error {
	query := `DELETE FROM quiz_results WHERE user_id = $1 AND activity_type = $2 AND created_at >= $3`

	_, err := q.db.ExecContext(ctx, query, userID, activity, since)
	return err
}

func (q *ResultR) QuizStats(ctx context.Context, userID int64) (models.QuizStats, error) {
	query := `SELECT 
		COUNT(*) AS total_count,
		COALESCE(SUM(CASE WHEN passed THEN 1 ELSE 0 END), 0) AS right_count
	FROM quiz_results
	WHERE user_id = $1`

	var stats models.QuizStats
	err := q.db.GetContext(ctx, &stats, query, userID)
	if err != nil {
		return models.QuizStats{}, err
	}

	stats.WrongCount = stats.TotalCount - stats.RightCount

	return stats, nil
}

func (q *ResultR) RecentResults(ctx context.Context, userID int64, limit int) ([]models.ResultRecord, error) {
	query := `
		SELECT user_id, activity_type, total, correct, passed, synced, created_at
		FROM quiz_results
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	results := make([]models.ResultRecord, 0, limit)
	if err := q.db.SelectContext(ctx, &results, query, userID, limit); err != nil {
		return nil, err
	}
	return results, nil
}
