package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laithkh03/task/internal/models"
	"github.com/laithkh03/task/internal/repository"
)

// fakeTaskRepo implements TaskRepository for testing.
type fakeTaskRepo struct {
	createID  int64
	createErr error
	created   *models.Task
	list      []models.Task
	listErr   error
	getTask   *models.Task
	getErr    error
	updated   *models.Task
	updateErr error
	deleted   bool
	deleteErr error
}

func (f *fakeTaskRepo) Create(ctx context.Context, t models.Task) (int64, error) {
	f.created = &t
	return f.createID, f.createErr
}

func (f *fakeTaskRepo) ListByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	return f.list, f.listErr
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, userID, id int64) (*models.Task, error) {
	return f.getTask, f.getErr
}

func (f *fakeTaskRepo) Update(ctx context.Context, t models.Task) error {
	f.updated = &t
	return f.updateErr
}

func (f *fakeTaskRepo) Delete(ctx context.Context, userID, id int64) error {
	f.deleted = true
	return f.deleteErr
}

func TestTaskCreate_DefaultsStatusToPending(t *testing.T) {
	repo := &fakeTaskRepo{createID: 10}
	svc := NewTaskService(repo)

	created, err := svc.Create(context.Background(), 2, models.Task{Title: "t1", DueDate: "2025-01-01"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, int64(2), created.UserID)
	assert.Equal(t, models.StatusPending, repo.created.Status)
}

func TestTaskCreate_KeepsExplicitStatus(t *testing.T) {
	repo := &fakeTaskRepo{createID: 10}
	svc := NewTaskService(repo)

	created, err := svc.Create(context.Background(), 2, models.Task{Title: "t1", Status: "done"})
	require.NoError(t, err)
	assert.Equal(t, "done", created.Status)
}

func TestTaskCreate_RepoError(t *testing.T) {
	repo := &fakeTaskRepo{createErr: errors.New("insert failed")}
	svc := NewTaskService(repo)

	_, err := svc.Create(context.Background(), 2, models.Task{Title: "t1"})
	assert.Error(t, err)
}

func TestTaskUpdate_OverwritesAllFields(t *testing.T) {
	repo := &fakeTaskRepo{getTask: &models.Task{ID: 1, Title: "old", Status: "pending", UserID: 2}}
	svc := NewTaskService(repo)

	// Only the title is submitted: the remaining fields are written
	// back blank. Full overwrite, not a patch.
	updated, err := svc.Update(context.Background(), 2, 1, models.Task{Title: "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
	assert.Empty(t, updated.Description)
	assert.Empty(t, updated.Status)
	assert.Empty(t, updated.DueDate)

	require.NotNil(t, repo.updated)
	assert.Equal(t, int64(1), repo.updated.ID)
	assert.Equal(t, int64(2), repo.updated.UserID)
	assert.Empty(t, repo.updated.Status)
}

func TestTaskUpdate_NotFound(t *testing.T) {
	repo := &fakeTaskRepo{getErr: repository.ErrTaskNotFound}
	svc := NewTaskService(repo)

	_, err := svc.Update(context.Background(), 2, 1, models.Task{Title: "new"})
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.Nil(t, repo.updated, "no write must happen when the lookup fails")
}

func TestTaskUpdate_WriteError(t *testing.T) {
	repo := &fakeTaskRepo{
		getTask:   &models.Task{ID: 1, UserID: 2},
		updateErr: errors.New("update failed"),
	}
	svc := NewTaskService(repo)

	_, err := svc.Update(context.Background(), 2, 1, models.Task{Title: "new"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskDelete_NotFound(t *testing.T) {
	repo := &fakeTaskRepo{getErr: repository.ErrTaskNotFound}
	svc := NewTaskService(repo)

	err := svc.Delete(context.Background(), 2, 1)
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.False(t, repo.deleted, "no delete must happen when the lookup fails")
}

func TestTaskDelete_Success(t *testing.T) {
	repo := &fakeTaskRepo{getTask: &models.Task{ID: 1, UserID: 2}}
	svc := NewTaskService(repo)

	err := svc.Delete(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.True(t, repo.deleted)
}
