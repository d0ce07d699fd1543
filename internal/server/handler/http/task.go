package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/laithkh03/task/internal/middleware"
	"github.com/laithkh03/task/internal/models"
	"github.com/laithkh03/task/internal/service"
)

// TaskService defines the interface for task operations required by the
// TaskHandler. Every operation is scoped to the authenticated owner.
type TaskService interface {
	// Create persists a new task owned by userID and returns it with
	// the generated id.
	Create(ctx context.Context, userID int64, t models.Task) (*models.Task, error)
	// List retrieves all tasks owned by userID.
	List(ctx context.Context, userID int64) ([]models.Task, error)
	// Get fetches the task matching id and owned by userID.
	Get(ctx context.Context, userID, id int64) (*models.Task, error)
	// Update overwrites all editable fields of the matching task.
	Update(ctx context.Context, userID, id int64, t models.Task) (*models.Task, error)
	// Delete removes the matching task.
	Delete(ctx context.Context, userID, id int64) error
}

// TaskHandler handles HTTP requests for task CRUD.
type TaskHandler struct {
	// TaskService performs the underlying task operations.
	TaskService TaskService
}

// taskRequest represents the JSON payload for creating or updating a task.
type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date"`
}

// callerID resolves the authenticated user's id from the request
// context. The auth gate has already verified the token; a zero id here
// means the request somehow bypassed it, so the handler re-checks.
func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == 0 {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// taskID parses the {id} URL parameter. A non-numeric id cannot match
// any task, so it is reported as not found.
func taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Task not found"})
		return 0, false
	}
	return id, true
}

// Create handles POST /tasks. A blank or absent status defaults to
// "pending". Answers 201 with the created record including its
// generated id.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	created, err := h.TaskService.Create(r.Context(), userID, models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Unable to create task"})
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /tasks. A user with zero tasks gets 404 with a
// "No tasks found" message rather than an empty 200 list.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	tasks, err := h.TaskService.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Unable to fetch tasks"})
		return
	}
	if len(tasks) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "No tasks found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}

// Get handles GET /tasks/{id}. A task owned by another user is
// indistinguishable from a nonexistent one: both answer 404.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	t, err := h.TaskService.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Task not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Unable to fetch task"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"task": t})
}

// Update handles PUT /tasks/{id}. This is a full-field overwrite:
// fields missing from the body are written as blank. Answers 200 with
// the submitted fields.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	updated, err := h.TaskService.Update(r.Context(), userID, id, models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Task not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Unable to update task"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"task": updated})
}

// Delete handles DELETE /tasks/{id}. Answers 204 with an empty body on
// success.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	if err := h.TaskService.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Task not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Unable to delete task"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
