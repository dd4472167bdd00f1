package tasksdk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
)

// Session is an authenticated view of the API for a single account. It
// keeps a local mirror of the account's tasks that is refreshed only
// from server responses, so the view never drifts from what the server
// acknowledged.
//
// A Session is safe for concurrent use. Once a request comes back 401
// the session drops its token and mirror and every later call fails
// with ErrNotAuthenticated until a new Login.
type Session struct {
	client *SDKClient

	mu            sync.RWMutex
	token         string
	username      string
	tasks         map[string]TaskResponse
	authenticated bool
}

func newSession(client *SDKClient, token, username string) *Session {
	return &Session{
		client:        client,
		token:         token,
		username:      username,
		tasks:         make(map[string]TaskResponse),
		authenticated: true,
	}
}

// Username returns the display name of the logged-in account, or the
// empty string after logout.
func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// Token returns the raw bearer token, or the empty string when the
// session is anonymous.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether the session still holds a token.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Logout discards the token and the local task mirror. The server keeps
// no session state, so this is purely local.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidateLocked()
}

func (s *Session) invalidateLocked() {
	s.token = ""
	s.username = ""
	s.tasks = make(map[string]TaskResponse)
	s.authenticated = false
}

// Tasks returns a snapshot of the mirrored tasks, newest first.
func (s *Session) Tasks() []TaskResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]TaskResponse, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return out
}

// Task returns the mirrored task with the given id, if present.
func (s *Session) Task(id string) (TaskResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	return t, ok
}

// ListTasks fetches the account's tasks and replaces the local mirror
// with the server's list.
func (s *Session) ListTasks(ctx context.Context) ([]TaskResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/tasks", nil)
	if err != nil {
		return nil, err
	}

	var list []TaskResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, s.convertAuthError(err)
	}

	s.mu.Lock()
	s.tasks = make(map[string]TaskResponse, len(list))
	for _, t := range list {
		s.tasks[t.ID] = t
	}
	s.mu.Unlock()

	return list, nil
}

// CreateTask creates a task and inserts the server's record into the
// mirror. The returned record carries the server-assigned id and
// timestamps, not the request values.
func (s *Session) CreateTask(ctx context.Context, req CreateTaskRequest) (TaskResponse, error) {
	body, err := jsonBody(req)
	if err != nil {
		return TaskResponse{}, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/tasks", body)
	if err != nil {
		return TaskResponse{}, err
	}

	var task TaskResponse
	if err := decodeJSON(resp, &task, http.StatusCreated); err != nil {
		return TaskResponse{}, s.convertAuthError(err)
	}

	s.mu.Lock()
	s.tasks[task.ID] = task
	s.mu.Unlock()

	return task, nil
}

// UpdateTask applies a partial update and replaces the mirrored record
// with the full updated task from the server.
func (s *Session) UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (TaskResponse, error) {
	body, err := jsonBody(req)
	if err != nil {
		return TaskResponse{}, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPatch, "/tasks/"+id, body)
	if err != nil {
		return TaskResponse{}, err
	}

	var task TaskResponse
	if err := decodeJSON(resp, &task, http.StatusOK); err != nil {
		return TaskResponse{}, s.convertAuthError(err)
	}

	s.mu.Lock()
	s.tasks[task.ID] = task
	s.mu.Unlock()

	return task, nil
}

// DeleteTask deletes a task. The record is removed from the mirror only
// after the server confirms the deletion.
func (s *Session) DeleteTask(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/tasks/"+id, nil)
	if err != nil {
		return err
	}

	if err := checkStatusNoContent(resp); err != nil {
		return s.convertAuthError(err)
	}

	s.mu.Lock()
	delete(s.tasks, id)
	s.mu.Unlock()

	return nil
}

// doAuthRequest performs a request with the session's bearer token,
// failing fast when the session is already anonymous.
func (s *Session) doAuthRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
) (*http.Response, error) {
	s.mu.RLock()
	token := s.token
	ok := s.authenticated
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotAuthenticated
	}

	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// convertAuthError invalidates the session when the server answered
// 401, so stale tokens do not keep hammering the API.
func (s *Session) convertAuthError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		s.mu.Lock()
		s.invalidateLocked()
		s.mu.Unlock()
	}
	return err
}
