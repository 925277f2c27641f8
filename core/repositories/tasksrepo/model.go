package tasksrepo

import "time"

// Task is the full record shape, including the columns the storage layer
// fills in on insert.
type Task struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Completed bool      `db:"completed" json:"completed"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreateTask contains the user-settable fields for creating a new task.
// Replace uses the same shape since a full update supplies every field.
type CreateTask struct {
	Name      string
	Completed bool
}

// UpdateTask contains the fields for a partial update. All fields are
// pointers; nil means "do not change".
type UpdateTask struct {
	Name      *string
	Completed *bool
}
