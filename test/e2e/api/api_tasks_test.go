package api_test

import (
	"net/http"
	"testing"

	"github.com/prioritypro/prioritypro/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func TestTaskLifecycle(t *testing.T) {
	baseURL, cleanup := setupTaskContainer(t)
	defer cleanup()

	client := tasksdk.NewSDKClient(baseURL)
	ctx := t.Context()

	registerAccount(t, client, "alice", "alice@example.com")
	session := performLogin(t, client, "alice@example.com")

	tasks, err := session.ListTasks(ctx)
	require.NoError(t, err)
	require.Empty(t, tasks, "A fresh account starts with no tasks")

	created, err := session.CreateTask(ctx, tasksdk.CreateTaskRequest{
		Title:    "write quarterly report",
		Priority: "high",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "high", created.Priority)
	require.False(t, created.Completed)
	require.False(t, created.CreatedAt.IsZero())

	defaulted, err := session.CreateTask(ctx, tasksdk.CreateTaskRequest{Title: "buy groceries"})
	require.NoError(t, err)
	require.Equal(t, "medium", defaulted.Priority, "Priority should default to medium")

	done := true
	updated, err := session.UpdateTask(ctx, created.ID, tasksdk.UpdateTaskRequest{Completed: &done})
	require.NoError(t, err)
	require.True(t, updated.Completed)
	require.Equal(t, created.Title, updated.Title, "Unpatched fields keep their values")
	require.Equal(t, created.Priority, updated.Priority)

	require.NoError(t, session.DeleteTask(ctx, defaulted.ID))

	tasks, err = session.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, created.ID, tasks[0].ID)
}

func TestTaskValidation(t *testing.T) {
	baseURL, cleanup := setupTaskContainer(t)
	defer cleanup()

	client := tasksdk.NewSDKClient(baseURL)
	ctx := t.Context()

	registerAccount(t, client, "alice", "alice@example.com")
	session := performLogin(t, client, "alice@example.com")

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := session.CreateTask(ctx, tasksdk.CreateTaskRequest{Title: "   "})
		assertAPIError(t, err, http.StatusBadRequest, tasksdk.ErrorCodeInvalidInput)
	})

	t.Run("unknown priority rejected", func(t *testing.T) {
		_, err := session.CreateTask(ctx, tasksdk.CreateTaskRequest{
			Title:    "a task",
			Priority: "urgent",
		})
		assertAPIError(t, err, http.StatusBadRequest, tasksdk.ErrorCodeInvalidInput)
	})
}

func TestTasksRequireAuthentication(t *testing.T) {
	baseURL, cleanup := setupTaskContainer(t)
	defer cleanup()

	resp, err := http.Get(baseURL + "/tasks")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, baseURL+"/tasks", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

func TestTasksIsolatedBetweenAccounts(t *testing.T) {
	baseURL, cleanup := setupTaskContainer(t)
	defer cleanup()

	client := tasksdk.NewSDKClient(baseURL)
	ctx := t.Context()

	registerAccount(t, client, "alice", "alice@example.com")
	registerAccount(t, client, "bob", "bob@example.com")

	alice := performLogin(t, client, "alice@example.com")
	bob := performLogin(t, client, "bob@example.com")

	created, err := alice.CreateTask(ctx, tasksdk.CreateTaskRequest{Title: "alice only"})
	require.NoError(t, err)

	bobTasks, err := bob.ListTasks(ctx)
	require.NoError(t, err)
	require.Empty(t, bobTasks, "Bob should not see alice's tasks")

	// Acting on alice's task id looks exactly like a missing task.
	title := "stolen"
	_, err = bob.UpdateTask(ctx, created.ID, tasksdk.UpdateTaskRequest{Title: &title})
	assertAPIError(t, err, http.StatusNotFound, tasksdk.ErrorCodeNotFound)

	err = bob.DeleteTask(ctx, created.ID)
	assertAPIError(t, err, http.StatusNotFound, tasksdk.ErrorCodeNotFound)

	aliceTasks, err := alice.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, aliceTasks, 1)
	require.Equal(t, "alice only", aliceTasks[0].Title)
}

func TestTasksSurviveReconnect(t *testing.T) {
	baseURL, cleanup := setupTaskContainer(t)
	defer cleanup()

	client := tasksdk.NewSDKClient(baseURL)
	ctx := t.Context()

	registerAccount(t, client, "alice", "alice@example.com")
	session := performLogin(t, client, "alice@example.com")

	_, err := session.CreateTask(ctx, tasksdk.CreateTaskRequest{Title: "persisted"})
	require.NoError(t, err)
	session.Logout()

	// A brand new login sees the stored task.
	again := performLogin(t, client, "alice@example.com")
	tasks, err := again.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "persisted", tasks[0].Title)
}
