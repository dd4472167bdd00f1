package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/prioritypro/prioritypro/internal/api/domain"
	"github.com/prioritypro/prioritypro/internal/api/store"
	"github.com/prioritypro/prioritypro/pkg/idx"
	"github.com/prioritypro/prioritypro/pkg/slogx"
)

// ErrTaskNotFound covers both "no such task" and "task belongs to another
// account". Collapsing the two is a deliberate anti-enumeration measure; do
// not split them.
var ErrTaskNotFound = errors.New("task not found")

// CreateTaskInput is the validated shape for a new task. The server assigns
// the id and timestamps; anything the client sends for those is ignored.
type CreateTaskInput struct {
	Title     string
	Priority  domain.Priority
	Completed bool
}

type TaskService struct {
	Store store.Store
}

// List returns every task owned by ownerID.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]domain.Task, error) {
	return s.Store.Tasks().ListTasksByOwner(ctx, ownerID)
}

// Create validates and stores a new task owned by ownerID.
func (s *TaskService) Create(
	ctx context.Context,
	ownerID string,
	in CreateTaskInput,
) (domain.Task, error) {
	log := slogx.FromContext(ctx)

	in.Title = strings.TrimSpace(in.Title)
	if in.Priority == "" {
		in.Priority = domain.PriorityMedium
	}

	fields := fieldErrors{}
	if in.Title == "" {
		fields["title"] = "title must not be empty"
	}
	if !in.Priority.Valid() {
		fields["priority"] = "priority must be one of low, medium, high"
	}
	if err := fields.err(); err != nil {
		return domain.Task{}, err
	}

	now := time.Now().UTC()
	task := domain.Task{
		ID:        idx.New().String(),
		OwnerID:   ownerID,
		Title:     in.Title,
		Priority:  in.Priority,
		Completed: in.Completed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Tasks().CreateTask(ctx, task); err != nil {
		log.Error("failed to create task", slog.Any("error", err))
		return domain.Task{}, err
	}

	return task, nil
}

// Update applies a partial patch to a task owned by ownerID. Only the
// provided fields change; applying the same patch twice is idempotent.
func (s *TaskService) Update(
	ctx context.Context,
	ownerID, taskID string,
	patch domain.TaskPatch,
) (domain.Task, error) {
	fields := fieldErrors{}
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		if trimmed == "" {
			fields["title"] = "title must not be empty"
		}
		patch.Title = &trimmed
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		fields["priority"] = "priority must be one of low, medium, high"
	}
	if err := fields.err(); err != nil {
		return domain.Task{}, err
	}

	task, err := s.Store.Tasks().UpdateTask(ctx, taskID, ownerID, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return task, nil
}

// Delete removes a task owned by ownerID.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	err := s.Store.Tasks().DeleteTask(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	return nil
}
