package ports

import (
	"context"

	"github.com/google/uuid"

	"taskify/internal/core/domain"
	"taskify/pkg/result"
)

type TaskRepository interface {
	// GetAll returns tasks newest-first by creation time, optionally
	// restricted to a single status.
	GetAll(ctx context.Context, status *domain.Status) ([]domain.Task, error)
	// GetByID returns nil when no task has the given id.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	// Update returns nil when the id no longer exists.
	Update(ctx context.Context, task domain.Task) (*domain.Task, error)
	// Delete is a no-op for absent ids; callers check existence first.
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskService returns expected failures (not found, invalid input)
// inside the result; the error return carries infrastructure faults
// only.
type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (result.Result[domain.Task], error)
	GetTaskByID(ctx context.Context, id uuid.UUID) (result.Result[domain.Task], error)
	ListTasks(ctx context.Context, statusFilter string) (result.Result[[]domain.Task], error)
	UpdateTask(ctx context.Context, input domain.UpdateTaskInput) (result.Result[domain.Task], error)
	DeleteTask(ctx context.Context, id uuid.UUID) (result.Result[result.Unit], error)
}
