package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusToDo       Status = "ToDo"
	StatusInProgress Status = "InProgress"
	StatusDone       Status = "Done"
)

// ParseStatus resolves a status name case-insensitively.
func ParseStatus(value string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "todo":
		return StatusToDo, nil
	case "inprogress":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	default:
		return "", fmt.Errorf("unknown task status %q", value)
	}
}

func (s Status) String() string {
	return string(s)
}

type Task struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
}

// UpdateTaskInput carries the full replacement state for a task.
// Status arrives in its raw string form and is parsed during
// validation.
type UpdateTaskInput struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Status      string
}
