package service

import (
	"testing"
	"time"

	"github.com/DanRulev/vocamission.git/internal/client"
	"github.com/DanRulev/vocamission.git/internal/models"
	mock_service "github.com/DanRulev/vocamission.git/internal/service/mock"
	"github.com/DanRulev/vocamission.git/internal/storage/cache"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"
)

const (
	testUserID = int64(42)
	testToken  = "tok"
)

var (
	errBackendDown  = &client.APIError{Status: 503, Message: "unavailable"}
	errUnauthorized = &client.APIError{Status: 401, Message: "Could not validate credentials"}
	errNotFound     = &client.APIError{Status: 404, Message: "Not Found"}
)

func newServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI, *mock_service.MockAPII)) (*Service, *cache.Cache) {
	t.Helper()

	api := mock_service.NewMockAPII(ctrl)
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo, api)
	}

	store := cache.NewCache(time.Hour)
	return InitServices(api, repo, store, zap.NewNop()), store
}

// linked makes the test user a logged-in account with the given role.
func linked(repo *mock_service.MockRepositoryI, role models.Role) {
	repo.EXPECT().Account(gomock.Any(), testUserID).Return(models.Account{
		UserID: testUserID,
		Email:  "student@example.com",
		Role:   role,
		Token:  testToken,
	}, nil).AnyTimes()
}

func TestUserLocks(t *testing.T) {
	t.Parallel()

	locks := newUserLocks()
	unlock := locks.lock(1)

	other := make(chan struct{})
	go func() {
		locks.lock(2)()
		close(other)
	}()
	<-other

	same := make(chan struct{})
	go func() {
		locks.lock(1)()
		close(same)
	}()

	select {
	case <-same:
		t.Fatal("second lock of the same user must wait")
	case <-time.After(20 * time.Millisecond):
	}

	unlock()
	<-same
}
