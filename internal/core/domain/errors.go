package domain

import "taskify/pkg/result"

var (
	ErrTaskNotFound  = result.Error{Code: "TaskItem.TaskNotFound", Message: "Task not found"}
	ErrInvalidStatus = result.Error{Code: "TaskItem.InvalidStatus", Message: "Invalid status"}
)
