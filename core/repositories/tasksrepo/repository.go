// Package tasksrepo provides access to task storage.
package tasksrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrazmi/taskpad/sdk/logger"
)

// Set of error values for CRUD operations on the task resource.
var (
	ErrNotFound = errors.New("task not found")
)

// Storer defines the data storage interface for Task. Every method issues
// exactly one query against the underlying store.
type Storer interface {
	List(ctx context.Context) ([]Task, error)
	GetByID(ctx context.Context, id int64) (Task, error)
	Create(ctx context.Context, input CreateTask) (Task, error)
	Replace(ctx context.Context, id int64, input CreateTask) (Task, error)
	Update(ctx context.Context, id int64, input UpdateTask) (Task, error)
	Delete(ctx context.Context, id int64) error
}

type Repository struct {
	log    *logger.Logger
	storer Storer
}

func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// List returns every task ordered by ascending id.
func (r *Repository) List(ctx context.Context) ([]Task, error) {
	records, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("task repository list: %w", err)
	}

	return records, nil
}

// GetByID returns a single task. Absence surfaces as ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id int64) (Task, error) {
	record, err := r.storer.GetByID(ctx, id)
	if err != nil {
		return Task{}, fmt.Errorf("task repository get by id: %w", err)
	}

	return record, nil
}

// Create persists a new task. The store assigns id and created_at.
func (r *Repository) Create(ctx context.Context, input CreateTask) (Task, error) {
	record, err := r.storer.Create(ctx, input)
	if err != nil {
		return Task{}, fmt.Errorf("task repository create: %w", err)
	}

	r.log.InfoContext(ctx, "task created", "task_id", record.ID)
	return record, nil
}

// Replace overwrites every user-settable field of an existing task, even
// when the supplied value is a zero value.
func (r *Repository) Replace(ctx context.Context, id int64, input CreateTask) (Task, error) {
	record, err := r.storer.Replace(ctx, id, input)
	if err != nil {
		return Task{}, fmt.Errorf("task repository replace: %w", err)
	}

	return record, nil
}

// Update overwrites only the fields present in the input; nil fields are
// left unchanged.
func (r *Repository) Update(ctx context.Context, id int64, input UpdateTask) (Task, error) {
	record, err := r.storer.Update(ctx, id, input)
	if err != nil {
		return Task{}, fmt.Errorf("task repository update: %w", err)
	}

	return record, nil
}

// Delete removes a task permanently.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.storer.Delete(ctx, id); err != nil {
		return fmt.Errorf("task repository delete: %w", err)
	}

	r.log.InfoContext(ctx, "task deleted", "task_id", id)
	return nil
}
