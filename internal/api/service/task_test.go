package service

import (
	"testing"
	"time"

	"github.com/prioritypro/prioritypro/internal/api/domain"
	"github.com/prioritypro/prioritypro/internal/api/store"
	"github.com/prioritypro/prioritypro/pkg/idx"
	"github.com/stretchr/testify/require"
)

// newTestOwner registers an account so task rows satisfy the owner FK.
func newTestOwner(t *testing.T, st store.Store) string {
	t.Helper()

	// The tail of a ULID is its random component; the head is the
	// timestamp and collides within a millisecond.
	suffix := idx.New().String()
	suffix = suffix[len(suffix)-10:]

	accounts := &AccountService{Store: st}
	account, err := accounts.Register(
		t.Context(),
		"owner-"+suffix,
		suffix+"@example.com",
		"secret123",
	)
	require.NoError(t, err)
	return account.ID
}

func TestCreateTaskDefaults(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &TaskService{Store: st}
	owner := newTestOwner(t, st)
	ctx := t.Context()

	task, err := svc.Create(ctx, owner, CreateTaskInput{Title: "  write report  "})
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	require.Equal(t, owner, task.OwnerID)
	require.Equal(t, "write report", task.Title)
	require.Equal(t, domain.PriorityMedium, task.Priority)
	require.False(t, task.Completed)
	require.Equal(t, task.CreatedAt, task.UpdatedAt)
}

func TestCreateTaskValidation(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &TaskService{Store: st}
	owner := newTestOwner(t, st)
	ctx := t.Context()

	t.Run("empty title", func(t *testing.T) {
		_, err := svc.Create(ctx, owner, CreateTaskInput{Title: "   "})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Contains(t, vErr.Fields, "title")
	})

	t.Run("unknown priority", func(t *testing.T) {
		_, err := svc.Create(ctx, owner, CreateTaskInput{
			Title:    "a task",
			Priority: domain.Priority("urgent"),
		})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Contains(t, vErr.Fields, "priority")
	})
}

func TestListTasksScopedToOwner(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &TaskService{Store: st}
	alice := newTestOwner(t, st)
	bob := newTestOwner(t, st)
	ctx := t.Context()

	_, err := svc.Create(ctx, alice, CreateTaskInput{Title: "alice task"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, CreateTaskInput{Title: "bob task"})
	require.NoError(t, err)

	aliceTasks, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, aliceTasks, 1)
	require.Equal(t, "alice task", aliceTasks[0].Title)

	bobTasks, err := svc.List(ctx, bob)
	require.NoError(t, err)
	require.Len(t, bobTasks, 1)
	require.Equal(t, "bob task", bobTasks[0].Title)
}

func TestUpdateTaskPartial(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &TaskService{Store: st}
	owner := newTestOwner(t, st)
	ctx := t.Context()

	task, err := svc.Create(ctx, owner, CreateTaskInput{
		Title:    "draft slides",
		Priority: domain.PriorityLow,
	})
	require.NoError(t, err)

	done := true
	updated, err := svc.Update(ctx, owner, task.ID, domain.TaskPatch{Completed: &done})
	require.NoError(t, err)

	// Only the patched field changed.
	require.True(t, updated.Completed)
	require.Equal(t, task.Title, updated.Title)
	require.Equal(t, task.Priority, updated.Priority)
	require.WithinDuration(t, task.CreatedAt, updated.CreatedAt, time.Second)
	require.True(t, updated.UpdatedAt.After(task.CreatedAt) || updated.UpdatedAt.Equal(task.CreatedAt))

	// Applying the same patch again is idempotent.
	again, err := svc.Update(ctx, owner, task.ID, domain.TaskPatch{Completed: &done})
	require.NoError(t, err)
	require.Equal(t, updated.Title, again.Title)
	require.Equal(t, updated.Priority, again.Priority)
	require.True(t, again.Completed)
}

func TestUpdateTaskValidation(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &TaskService{Store: st}
	owner := newTestOwner(t, st)
	ctx := t.Context()

	task, err := svc.Create(ctx, owner, CreateTaskInput{Title: "a task"})
	require.NoError(t, err)

	t.Run("blank title rejected", func(t *testing.T) {
		blank := "   "
		_, err := svc.Update(ctx, owner, task.ID, domain.TaskPatch{Title: &blank})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Contains(t, vErr.Fields, "title")
	})

	t.Run("title trimmed", func(t *testing.T) {
		padded := "  new title  "
		updated, err := svc.Update(ctx, owner, task.ID, domain.TaskPatch{Title: &padded})
		require.NoError(t, err)
		require.Equal(t, "new title", updated.Title)
	})
}

func TestTaskNotFoundCollapsesOwnership(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &TaskService{Store: st}
	alice := newTestOwner(t, st)
	bob := newTestOwner(t, st)
	ctx := t.Context()

	task, err := svc.Create(ctx, alice, CreateTaskInput{Title: "alice task"})
	require.NoError(t, err)

	title := "stolen"
	patch := domain.TaskPatch{Title: &title}

	// A task owned by someone else and a task that does not exist produce
	// the same error, so ids cannot be probed across accounts.
	_, foreignErr := svc.Update(ctx, bob, task.ID, patch)
	require.ErrorIs(t, foreignErr, ErrTaskNotFound)

	_, missingErr := svc.Update(ctx, bob, idx.New().String(), patch)
	require.ErrorIs(t, missingErr, ErrTaskNotFound)

	require.Equal(t, missingErr.Error(), foreignErr.Error())

	require.ErrorIs(t, svc.Delete(ctx, bob, task.ID), ErrTaskNotFound)

	// The foreign attempts left alice's task untouched.
	tasks, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "alice task", tasks[0].Title)
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &TaskService{Store: st}
	owner := newTestOwner(t, st)
	ctx := t.Context()

	task, err := svc.Create(ctx, owner, CreateTaskInput{Title: "ephemeral"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner, task.ID))

	// A second delete reports not found.
	require.ErrorIs(t, svc.Delete(ctx, owner, task.ID), ErrTaskNotFound)

	tasks, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestListTasksNewestFirst(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	owner := newTestOwner(t, st)
	ctx := t.Context()

	base := time.Now().UTC().Truncate(time.Second)
	for i, title := range []string{"oldest", "middle", "newest"} {
		task := domain.Task{
			ID:        idx.New().String(),
			OwnerID:   owner,
			Title:     title,
			Priority:  domain.PriorityMedium,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, st.Tasks().CreateTask(ctx, task))
	}

	svc := &TaskService{Store: st}
	tasks, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	require.Equal(t, "newest", tasks[0].Title)
	require.Equal(t, "middle", tasks[1].Title)
	require.Equal(t, "oldest", tasks[2].Title)
}
