package service

import (
	"context"

	"github.com/laithkh03/task/internal/models"
	"github.com/laithkh03/task/internal/repository"
)

// ErrTaskNotFound indicates no task matched the (id, owner) lookup.
// Re-exported so handlers do not depend on the repository package.
var ErrTaskNotFound = repository.ErrTaskNotFound

// TaskRepository defines the persistence operations required by the
// task service. All lookups and mutations are scoped by owner.
type TaskRepository interface {
	// Create inserts a new task and returns the generated id.
	Create(ctx context.Context, t models.Task) (int64, error)
	// ListByUser retrieves all tasks owned by the given user.
	ListByUser(ctx context.Context, userID int64) ([]models.Task, error)
	// GetByID fetches a single task by id for the given user.
	GetByID(ctx context.Context, userID, id int64) (*models.Task, error)
	// Update overwrites all editable fields of the task matching (id, user_id).
	Update(ctx context.Context, t models.Task) error
	// Delete removes the task matching (id, user_id).
	Delete(ctx context.Context, userID, id int64) error
}

// TaskService implements ownership-scoped task operations.
type TaskService struct {
	repo TaskRepository
}

// NewTaskService constructs a TaskService with the provided repository.
func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Create persists a new task owned by userID and returns it with the
// generated id. A blank status defaults to "pending".
func (s *TaskService) Create(ctx context.Context, userID int64, t models.Task) (*models.Task, error) {
	if t.Status == "" {
		t.Status = models.StatusPending
	}
	t.UserID = userID

	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	t.ID = id
	return &t, nil
}

// List returns all tasks owned by userID.
func (s *TaskService) List(ctx context.Context, userID int64) ([]models.Task, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get returns the task matching id and owned by userID. A task owned by
// another user yields ErrTaskNotFound, same as a nonexistent one.
func (s *TaskService) Get(ctx context.Context, userID, id int64) (*models.Task, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// Update overwrites every editable field of the task matching id and
// owned by userID. Fields absent from t are written as blank: this is a
// full overwrite, not a partial patch. The submitted fields are returned
// on success. The lookup happens first so a missing or foreign task is
// reported as ErrTaskNotFound before any write.
func (s *TaskService) Update(ctx context.Context, userID, id int64, t models.Task) (*models.Task, error) {
	if _, err := s.repo.GetByID(ctx, userID, id); err != nil {
		return nil, err
	}

	t.ID = id
	t.UserID = userID
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes the task matching id and owned by userID.
func (s *TaskService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.repo.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, userID, id)
}
