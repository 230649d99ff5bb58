package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/DanRulev/vocamission.git/internal/models"
)

// Cache keeps per-user session snapshots in process memory. Values are stored
// encoded, so a snapshot read back never aliases the one written.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	session map[int64]entry
	study   map[int64]entry
	retry   map[string]time.Time
}

type entry struct {
	raw     []byte
	expires time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		session: make(map[int64]entry),
		study:   make(map[int64]entry),
		retry:   make(map[string]time.Time),
	}
}

func (c *Cache) expiry() time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return c.now().Add(c.ttl)
}

func (c *Cache) alive(expires time.Time) bool {
	return expires.IsZero() || c.now().Before(expires)
}

func (c *Cache) SetSession(_ context.Context, userID int64, state models.SessionState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session[userID] = entry{raw: raw, expires: c.expiry()}
	return nil
}

func (c *Cache) GetSession(_ context.Context, userID int64) (models.SessionState, bool, error) {
	c.mu.Lock()
	e, exists := c.session[userID]
	if exists && !c.alive(e.expires) {
		delete(c.session, userID)
		exists = false
	}
	c.mu.Unlock()

	if !exists {
		return models.SessionState{}, false, nil
	}
	var state models.SessionState
	if err := json.Unmarshal(e.raw, &state); err != nil {
		return models.SessionState{}, false, fmt.Errorf("decode session: %w", err)
	}
	return state, true, nil
}

func (c *Cache) DeleteSession(_ context.Context, userID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.session, userID)
	return nil
}

func (c *Cache) SetStudy(_ context.Context, userID int64, state models.StudyState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode study: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.study[userID] = entry{raw: raw, expires: c.expiry()}
	return nil
}

func (c *Cache) GetStudy(_ context.Context, userID int64) (models.StudyState, bool, error) {
	c.mu.Lock()
	e, exists := c.study[userID]
	if exists && !c.alive(e.expires) {
		delete(c.study, userID)
		exists = false
	}
	c.mu.Unlock()

	if !exists {
		return models.StudyState{}, false, nil
	}
	var state models.StudyState
	if err := json.Unmarshal(e.raw, &state); err != nil {
		return models.StudyState{}, false, fmt.Errorf("decode study: %w", err)
	}
	return state, true, nil
}

func (c *Cache) DeleteStudy(_ context.Context, userID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.study, userID)
	return nil
}

func (c *Cache) GrantRetry(_ context.Context, userID int64, activity models.ActivityType) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.retry[retryKey(userID, activity)] = c.expiry()
	return nil
}

// TakeRetry consumes the retry grant; a grant is good for one session.
func (c *Cache) TakeRetry(_ context.Context, userID int64, activity models.ActivityType) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := retryKey(userID, activity)
	expires, exists := c.retry[key]
	if !exists {
		return false, nil
	}
	delete(c.retry, key)
	return c.alive(expires), nil
}

func retryKey(userID int64, activity models.ActivityType) string {
	return fmt.Sprintf("%d:%s", userID, activity)
}
