package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taskify/internal/core/domain"
	"taskify/internal/core/ports"
)

const (
	listTasksQuery = `
SELECT id, title, description, status, created_at, updated_at
FROM tasks
ORDER BY created_at DESC;
`

	listTasksByStatusQuery = `
SELECT id, title, description, status, created_at, updated_at
FROM tasks
WHERE status = ?
ORDER BY created_at DESC;
`

	getTaskQuery = `
SELECT id, title, description, status, created_at, updated_at
FROM tasks
WHERE id = ?;
`

	insertTaskQuery = `
INSERT INTO tasks (id, title, description, status, created_at, updated_at)
VALUES (:id, :title, :description, :status, :created_at, :updated_at);
`

	updateTaskQuery = `
UPDATE tasks
SET title = :title, description = :description, status = :status, updated_at = :updated_at
WHERE id = :id;
`

	deleteTaskQuery = `DELETE FROM tasks WHERE id = ?;`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) GetAll(ctx context.Context, status *domain.Status) ([]domain.Task, error) {
	var rows []taskRow
	var err error
	if status != nil {
		err = r.db.SelectContext(ctx, &rows, listTasksByStatusQuery, status.String())
	} else {
		err = r.db.SelectContext(ctx, &rows, listTasksQuery)
	}
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, mapErr := mapTaskRowToDomainTask(row)
		if mapErr != nil {
			return nil, mapErr
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	task, err := mapTaskRowToDomainTask(row)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	if _, err := r.db.NamedExecContext(ctx, insertTaskQuery, mapDomainTaskToRow(task)); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) (*domain.Task, error) {
	res, err := r.db.NamedExecContext(ctx, updateTaskQuery, mapDomainTaskToRow(task))
	if err != nil {
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// The id may also exist with identical column values; re-check
		// before reporting it gone.
		existing, getErr := r.GetByID(ctx, task.ID)
		if getErr != nil {
			return nil, getErr
		}
		if existing == nil {
			return nil, nil
		}
	}

	return &task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, deleteTaskQuery, id.String())
	return err
}

func mapTaskRowToDomainTask(row taskRow) (domain.Task, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:        id,
		Title:     row.Title,
		Status:    domain.Status(row.Status),
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	return task, nil
}

func mapDomainTaskToRow(task domain.Task) taskRow {
	row := taskRow{
		ID:        task.ID.String(),
		Title:     task.Title,
		Status:    task.Status.String(),
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}

	if task.Description != nil {
		row.Description = sql.NullString{String: *task.Description, Valid: true}
	}

	return row
}
