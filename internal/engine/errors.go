package engine

import "fmt"

// NotFoundError indicates an id that no longer resolves to an active task.
// Covers both deleted tasks and tasks already completed (their card is gone).
type NotFoundError struct {
	TaskID int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.TaskID)
}

// ValidationError indicates input rejected before persistence.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
