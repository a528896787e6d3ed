package models

// Task is a unit of work submitted to a provider: a tagged description
// plus arbitrary context. Tasks are immutable once dispatched.
type Task struct {
	// Type is the task type tag used for routing (e.g. "security_review").
	Type string `json:"task_type"`
	// Description is the human-readable description of the work.
	Description string `json:"description"`
	// Context carries arbitrary key/value context passed to the provider.
	Context map[string]any `json:"context,omitempty"`
	// Priority is the task priority (higher is more important).
	Priority int `json:"priority"`
}

// NewTask creates a task with the default priority.
func NewTask(taskType, description string, context map[string]any) Task {
	return Task{
		Type:        taskType,
		Description: description,
		Context:     context,
		Priority:    1,
	}
}
