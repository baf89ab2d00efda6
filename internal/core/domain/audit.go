package domain

import (
	"time"

	"github.com/google/uuid"
)

type TaskAction string

const (
	ActionCreate TaskAction = "Create"
	ActionUpdate TaskAction = "Update"
	ActionDelete TaskAction = "Delete"
)

// TaskEvent is the audit payload published after a successful
// mutation. OldValues/NewValues are nil when the action has no
// before/after state.
type TaskEvent struct {
	Action    TaskAction     `json:"action"`
	TaskID    uuid.UUID      `json:"task_id"`
	OldValues map[string]any `json:"old_values,omitempty"`
	NewValues map[string]any `json:"new_values,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
