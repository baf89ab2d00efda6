package mapper

import (
	"time"

	"taskify/internal/adapter/http/dto"
	"taskify/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID.String(),
		Title:     task.Title,
		Status:    task.Status.String(),
		CreatedAt: task.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: task.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	return item
}
