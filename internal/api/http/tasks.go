package http

import (
	"net/http"

	"github.com/prioritypro/prioritypro/internal/api/domain"
	"github.com/prioritypro/prioritypro/internal/api/service"
	"github.com/prioritypro/prioritypro/pkg/httpx"
	"github.com/prioritypro/prioritypro/pkg/tasksdk"
)

type TasksHandler struct {
	TaskService *service.TaskService
}

func taskResponse(t domain.Task) tasksdk.TaskResponse {
	return tasksdk.TaskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Priority:  string(t.Priority),
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// HandleList godoc
//
//	@Summary		List Tasks Endpoint
//	@Description	Return every task owned by the authenticated account, newest first
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		tasksdk.TaskResponse	"tasks"
//	@Failure		401	{object}	tasksdk.ErrorResponse	"unauthenticated"
//	@Failure		503	{object}	tasksdk.ErrorResponse	"storage_unavailable"
//	@Router			/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID := httpx.AccountIDFromCtx(ctx)

	tasks, err := h.TaskService.List(ctx, ownerID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	// Serialize as [] rather than null when the account has no tasks.
	out := make([]tasksdk.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskResponse(t))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Create Task Endpoint
//	@Description	Create a task owned by the authenticated account
//	@Description	The id and timestamps are server-assigned; priority defaults to medium
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		tasksdk.CreateTaskRequest	true	"Task fields"
//	@Success		201		{object}	tasksdk.TaskResponse		"created task"
//	@Failure		400		{object}	tasksdk.ErrorResponse		"invalid_input"
//	@Failure		401		{object}	tasksdk.ErrorResponse		"unauthenticated"
//	@Failure		503		{object}	tasksdk.ErrorResponse		"storage_unavailable"
//	@Router			/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID := httpx.AccountIDFromCtx(ctx)

	var req tasksdk.CreateTaskRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	task, err := h.TaskService.Create(ctx, ownerID, service.CreateTaskInput{
		Title:     req.Title,
		Priority:  domain.Priority(req.Priority),
		Completed: req.Completed,
	})
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, taskResponse(task))
}

// HandleUpdate godoc
//
//	@Summary		Update Task Endpoint
//	@Description	Apply a partial update to a task owned by the authenticated account
//	@Description	Absent fields are left unchanged; a task owned by another account answers 404
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Task id"
//	@Param			request	body		tasksdk.UpdateTaskRequest	true	"Fields to change"
//	@Success		200		{object}	tasksdk.TaskResponse		"updated task"
//	@Failure		400		{object}	tasksdk.ErrorResponse		"invalid_input"
//	@Failure		401		{object}	tasksdk.ErrorResponse		"unauthenticated"
//	@Failure		404		{object}	tasksdk.ErrorResponse		"not_found"
//	@Failure		503		{object}	tasksdk.ErrorResponse		"storage_unavailable"
//	@Router			/tasks/{id} [patch].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID := httpx.AccountIDFromCtx(ctx)
	taskID := r.PathValue("id")

	var req tasksdk.UpdateTaskRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	patch := domain.TaskPatch{
		Title:     req.Title,
		Completed: req.Completed,
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		patch.Priority = &p
	}

	task, err := h.TaskService.Update(ctx, ownerID, taskID, patch)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskResponse(task))
}

// HandleDelete godoc
//
//	@Summary		Delete Task Endpoint
//	@Description	Delete a task owned by the authenticated account
//	@Description	A missing task and a task owned by another account both answer 404
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Task id"
//	@Success		204	"task deleted"
//	@Failure		401	{object}	tasksdk.ErrorResponse	"unauthenticated"
//	@Failure		404	{object}	tasksdk.ErrorResponse	"not_found"
//	@Failure		503	{object}	tasksdk.ErrorResponse	"storage_unavailable"
//	@Router			/tasks/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID := httpx.AccountIDFromCtx(ctx)
	taskID := r.PathValue("id")

	if err := h.TaskService.Delete(ctx, ownerID, taskID); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
