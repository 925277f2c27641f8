package tasksrepobridge

import "fmt"

// Task is the wire output shape: every field, including the ones the
// storage layer generates.
type Task struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

// CreateTaskInput is the creation-input shape. Fields are pointers so
// presence can be validated; empty and zero values are legal once a field
// is present. PUT reuses this shape since a full replace supplies every
// field.
type CreateTaskInput struct {
	Name      *string `json:"name"`
	Completed *bool   `json:"completed"`
}

// Validate implements the web validator interface.
func (c CreateTaskInput) Validate() error {
	if c.Name == nil {
		return fmt.Errorf("name is required")
	}
	if c.Completed == nil {
		return fmt.Errorf("completed is required")
	}
	return nil
}

// UpdateTaskInput is the partial-update shape. Absent and null both mean
// "do not change".
type UpdateTaskInput struct {
	Name      *string `json:"name"`
	Completed *bool   `json:"completed"`
}
