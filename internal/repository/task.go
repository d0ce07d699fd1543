package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/laithkh03/task/internal/models"
)

// PostgresTaskRepository implements task persistence against a PostgreSQL database.
// Every lookup and mutation is scoped by (id, user_id) so a task is only
// reachable through requests authenticated as its owner.
type PostgresTaskRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresTaskRepository creates a new PostgresTaskRepository using the
// provided *sql.DB. db must be a valid connection to a PostgreSQL instance.
func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{DB: db}
}

// Create inserts a new task and returns the generated id.
func (r *PostgresTaskRepository) Create(ctx context.Context, t models.Task) (int64, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO tasks (title, description, status, due_date, user_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id
	`, t.Title, t.Description, t.Status, t.DueDate, t.UserID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create task: %w", err)
	}
	return id, nil
}

// ListByUser fetches all tasks owned by the given user.
func (r *PostgresTaskRepository) ListByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, description, status, due_date, user_id FROM tasks WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.DueDate, &t.UserID); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// GetByID retrieves a single task by id for the given user. Returns
// ErrTaskNotFound when no row matches the (id, user_id) pair.
func (r *PostgresTaskRepository) GetByID(ctx context.Context, userID, id int64) (*models.Task, error) {
	var t models.Task
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, title, description, status, due_date, user_id FROM tasks
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.DueDate, &t.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// Update overwrites all editable fields of the task matching (id, user_id).
// Returns ErrTaskNotFound when no row matches.
func (r *PostgresTaskRepository) Update(ctx context.Context, t models.Task) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE tasks SET title = $1, description = $2, status = $3, due_date = $4
		WHERE id = $5 AND user_id = $6
	`, t.Title, t.Description, t.Status, t.DueDate, t.ID, t.UserID)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes the task matching (id, user_id). Returns ErrTaskNotFound
// when no row matches.
func (r *PostgresTaskRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM tasks WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}
