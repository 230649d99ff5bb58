package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnauthorized = errors.New("backend: unauthorized")
	ErrNotFound     = errors.New("backend: not found")
)

// APIError is a non-2xx backend response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: status %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// errorMessage extracts a readable message from an error body. FastAPI puts
// it under "detail", either as a string, an object or a list of objects.
func errorMessage(status int, body []byte) string {
	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		if msg := strings.TrimSpace(string(body)); msg != "" {
			return msg
		}
		return http.StatusText(status)
	}

	detail := data
	if obj, ok := data.(map[string]interface{}); ok {
		for _, key := range []string{"detail", "message", "error"} {
			if v, ok := obj[key]; ok && v != nil {
				detail = v
				break
			}
		}
	}

	switch d := detail.(type) {
	case string:
		return d
	case []interface{}:
		msgs := make([]string, 0, len(d))
		for _, it := range d {
			if msg := objectMessage(it); msg != "" {
				msgs = append(msgs, msg)
			}
		}
		return strings.Join(msgs, "\n")
	case map[string]interface{}:
		return objectMessage(d)
	case nil:
		return http.StatusText(status)
	}
	raw, _ := json.Marshal(detail)
	return string(raw)
}

func objectMessage(v interface{}) string {
	if obj, ok := v.(map[string]interface{}); ok {
		for _, key := range []string{"msg", "message"} {
			if s, ok := obj[key].(string); ok && s != "" {
				return s
			}
		}
	}
	if s, ok := v.(string); ok {
		return s
	}
	raw, _ := json.Marshal(v)
	return string(raw)
}
