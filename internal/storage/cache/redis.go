package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DanRulev/vocamission.git/internal/models"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "vocamission"

// RedisCache keeps the same snapshots as Cache in redis, so several bot
// replicas can serve one user.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(ctx context.Context, addr, password string, db int, ttl time.Duration) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisCache{rdb: rdb, ttl: ttl}, nil
}

func (r *RedisCache) Close() error {
	return r.rdb.Close()
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("%s:session:%d", keyPrefix, userID)
}

func studyKey(userID int64) string {
	return fmt.Sprintf("%s:study:%d", keyPrefix, userID)
}

func redisRetryKey(userID int64, activity models.ActivityType) string {
	return fmt.Sprintf("%s:retry:%s", keyPrefix, retryKey(userID, activity))
}

func (r *RedisCache) set(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.rdb.Set(ctx, key, raw, r.ttl).Err()
}

func (r *RedisCache) get(ctx context.Context, key string, v interface{}) (bool, error) {
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (r *RedisCache) SetSession(ctx context.Context, userID int64, state models.SessionState) error {
	return r.set(ctx, sessionKey(userID), state)
}

func (r *RedisCache) GetSession(ctx context.Context, userID int64) (models.SessionState, bool, error) {
	var state models.SessionState
	ok, err := r.get(ctx, sessionKey(userID), &state)
	return state, ok, err
}

func (r *RedisCache) DeleteSession(ctx context.Context, userID int64) error {
	return r.rdb.Del(ctx, sessionKey(userID)).Err()
}

func (r *RedisCache) SetStudy(ctx context.Context, userID int64, state models.StudyState) error {
	return r.set(ctx, studyKey(userID), state)
}

func (r *RedisCache) GetStudy(ctx context.Context, userID int64) (models.StudyState, bool, error) {
	var state models.StudyState
	ok, err := r.get(ctx, studyKey(userID), &state)
	return state, ok, err
}

func (r *RedisCache) DeleteStudy(ctx context.Context, userID int64) error {
	return r.rdb.Del(ctx, studyKey(userID)).Err()
}

func (r *RedisCache) GrantRetry(ctx context.Context, userID int64, activity models.ActivityType) error {
	return r.rdb.Set(ctx, redisRetryKey(userID, activity), 1, r.ttl).Err()
}

func (r *RedisCache) TakeRetry(ctx context.Context, userID int64, activity models.ActivityType) (bool, error) {
	err := r.rdb.GetDel(ctx, redisRetryKey(userID, activity)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
