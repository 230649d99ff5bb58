package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DanRulev/vocamission.git/internal/models"
)

// Login exchanges credentials for an access token (OAuth2 password form).
func (b *BackendAPI) Login(ctx context.Context, email, password string) (models.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var out models.TokenResponse
	err := b.do(ctx, request{method: http.MethodPost, path: "/login/token", form: form}, &out)
	return out, err
}

func (b *BackendAPI) Register(ctx context.Context, email, password string) (models.User, error) {
	body := map[string]string{"email": email, "password": password}

	var out models.User
	err := b.do(ctx, request{method: http.MethodPost, path: "/users/", body: body}, &out)
	return out, err
}

func (b *BackendAPI) Me(ctx context.Context, token string) (models.User, error) {
	var out models.User
	err := b.do(ctx, request{method: http.MethodGet, path: "/users/me", token: token}, &out)
	return out, err
}

func (b *BackendAPI) UpdateMe(ctx context.Context, token string, update models.UserUpdate) (models.User, error) {
	var out models.User
	err := b.do(ctx, request{method: http.MethodPut, path: "/users/me", token: token, body: update}, &out)
	return out, err
}

// Users lists users page by page; an empty role lists everyone.
func (b *BackendAPI) Users(ctx context.Context, token string, role models.Role, skip, limit int) (models.UserPage, error) {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))
	if role != "" {
		q.Set("role", string(role))
	}

	var out models.UserPage
	err := b.do(ctx, request{method: http.MethodGet, path: "/admin/users", token: token, query: q}, &out)
	return out, err
}

func (b *BackendAPI) UpdateUserRole(ctx context.Context, token string, userID int64, role models.Role) (models.User, error) {
	body := map[string]models.Role{"role": role}

	var out models.User
	err := b.do(ctx, request{
		method: http.MethodPut,
		path:   "/admin/users/" + strconv.FormatInt(userID, 10) + "/role",
		token:  token,
		body:   body,
	}, &out)
	return out, err
}

func (b *BackendAPI) UpdateUserGoals(ctx context.Context, token string, userID int64, goals models.Goals) (models.User, error) {
	var out models.User
	err := b.do(ctx, request{
		method: http.MethodPut,
		path:   "/admin/users/" + strconv.FormatInt(userID, 10) + "/goals",
		token:  token,
		body:   goals,
	}, &out)
	return out, err
}
