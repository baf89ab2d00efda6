package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskify/internal/app/validation"
	"taskify/internal/core/domain"
	"taskify/internal/core/ports"
	"taskify/pkg/result"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	auditPublisher ports.AuditPublisher
}

// NewTaskService wires the repository and an optional audit publisher.
// Pass nil to disable audit events.
func NewTaskService(taskRepository ports.TaskRepository, auditPublisher ports.AuditPublisher) *TaskService {
	return &TaskService{taskRepository: taskRepository, auditPublisher: auditPublisher}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (result.Result[domain.Task], error) {
	if errs := validation.ValidateCreate(input); len(errs) > 0 {
		zap.L().Warn("create task validation failed", zap.Int("error_count", len(errs)))
		return result.Fail[domain.Task](errs...), nil
	}

	now := time.Now().UTC()
	task := domain.Task{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.StatusToDo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.taskRepository.Create(ctx, task)
	if err != nil {
		return result.Result[domain.Task]{}, err
	}

	zap.L().Info("task created", zap.String("task_id", created.ID.String()))
	s.publishEvent(domain.ActionCreate, created.ID, nil, taskSnapshot(created))

	return result.Ok(created), nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, id uuid.UUID) (result.Result[domain.Task], error) {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return result.Result[domain.Task]{}, err
	}
	if task == nil {
		zap.L().Warn("task not found", zap.String("task_id", id.String()))
		return result.Fail[domain.Task](domain.ErrTaskNotFound), nil
	}

	return result.Ok(*task), nil
}

func (s *TaskService) ListTasks(ctx context.Context, statusFilter string) (result.Result[[]domain.Task], error) {
	var status *domain.Status
	if strings.TrimSpace(statusFilter) != "" {
		parsed, err := domain.ParseStatus(statusFilter)
		if err != nil {
			zap.L().Warn("invalid status filter", zap.String("status", statusFilter))
			return result.Fail[[]domain.Task](domain.ErrInvalidStatus), nil
		}
		status = &parsed
	}

	tasks, err := s.taskRepository.GetAll(ctx, status)
	if err != nil {
		return result.Result[[]domain.Task]{}, err
	}

	return result.Ok(tasks), nil
}

func (s *TaskService) UpdateTask(ctx context.Context, input domain.UpdateTaskInput) (result.Result[domain.Task], error) {
	if errs := validation.ValidateUpdate(input); len(errs) > 0 {
		zap.L().Warn("update task validation failed",
			zap.String("task_id", input.ID.String()),
			zap.Int("error_count", len(errs)))
		return result.Fail[domain.Task](errs...), nil
	}

	existing, err := s.taskRepository.GetByID(ctx, input.ID)
	if err != nil {
		return result.Result[domain.Task]{}, err
	}
	if existing == nil {
		zap.L().Warn("task not found", zap.String("task_id", input.ID.String()))
		return result.Fail[domain.Task](domain.ErrTaskNotFound), nil
	}

	// Validated above, cannot fail here.
	status, _ := domain.ParseStatus(input.Status)

	task := domain.Task{
		ID:          existing.ID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}

	updated, err := s.taskRepository.Update(ctx, task)
	if err != nil {
		return result.Result[domain.Task]{}, err
	}
	if updated == nil {
		// Deleted between the read and the write.
		return result.Fail[domain.Task](domain.ErrTaskNotFound), nil
	}

	zap.L().Info("task updated",
		zap.String("task_id", updated.ID.String()),
		zap.String("status", updated.Status.String()))
	s.publishEvent(domain.ActionUpdate, updated.ID, taskSnapshot(*existing), taskSnapshot(*updated))

	return result.Ok(*updated), nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) (result.Result[result.Unit], error) {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return result.Result[result.Unit]{}, err
	}
	if task == nil {
		zap.L().Warn("task not found", zap.String("task_id", id.String()))
		return result.Fail[result.Unit](domain.ErrTaskNotFound), nil
	}

	if err := s.taskRepository.Delete(ctx, id); err != nil {
		return result.Result[result.Unit]{}, err
	}

	zap.L().Info("task deleted", zap.String("task_id", id.String()))
	s.publishEvent(domain.ActionDelete, id, taskSnapshot(*task), nil)

	return result.Ok(result.Unit{}), nil
}

// publishEvent hands the audit event to the publisher without blocking
// the request. Publish failures are logged and dropped.
func (s *TaskService) publishEvent(action domain.TaskAction, taskID uuid.UUID, oldValues, newValues map[string]any) {
	if s.auditPublisher == nil {
		return
	}

	event := domain.TaskEvent{
		Action:    action,
		TaskID:    taskID,
		OldValues: oldValues,
		NewValues: newValues,
		Timestamp: time.Now().UTC(),
	}

	go func() {
		if err := s.auditPublisher.PublishTaskEvent(context.Background(), event); err != nil {
			zap.L().Warn("failed to publish audit event",
				zap.String("action", string(action)),
				zap.String("task_id", taskID.String()),
				zap.Error(err))
		}
	}()
}

func taskSnapshot(task domain.Task) map[string]any {
	snapshot := map[string]any{
		"title":  task.Title,
		"status": task.Status.String(),
	}
	if task.Description != nil {
		snapshot["description"] = *task.Description
	}
	return snapshot
}
