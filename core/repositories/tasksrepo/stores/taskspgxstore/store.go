// Package taskspgxstore implements the tasksrepo.Storer interface on a
// pgx connection pool.
package taskspgxstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskpad/core/repositories/tasksrepo"
	"github.com/jrazmi/taskpad/infrastructure/postgresdb"
	"github.com/jrazmi/taskpad/sdk/logger"
)

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

func (s *Store) List(ctx context.Context) ([]tasksrepo.Task, error) {
	query := `SELECT id, name, completed, created_at
		FROM tasks
		ORDER BY id ASC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	sl, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return sl, nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (tasksrepo.Task, error) {
	query := `SELECT id, name, completed, created_at
		FROM tasks
		WHERE id = @id`

	args := pgx.NamedArgs{
		"id": id,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, fmt.Errorf("task %d: %w", id, tasksrepo.ErrNotFound)
		}
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return task, nil
}

func (s *Store) Create(ctx context.Context, input tasksrepo.CreateTask) (tasksrepo.Task, error) {
	query := `INSERT INTO tasks (name, completed)
		VALUES (@name, @completed)
		RETURNING id, name, completed, created_at`

	args := pgx.NamedArgs{
		"name":      input.Name,
		"completed": input.Completed,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return task, nil
}

func (s *Store) Replace(ctx context.Context, id int64, input tasksrepo.CreateTask) (tasksrepo.Task, error) {
	query := `UPDATE tasks
		SET name = @name, completed = @completed
		WHERE id = @id
		RETURNING id, name, completed, created_at`

	args := pgx.NamedArgs{
		"id":        id,
		"name":      input.Name,
		"completed": input.Completed,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, fmt.Errorf("task %d: %w", id, tasksrepo.ErrNotFound)
		}
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return task, nil
}

// Update builds the SET list from the fields present in the input. With
// no fields set it degrades to a lookup so the caller still gets the
// not-found semantics of an update.
func (s *Store) Update(ctx context.Context, id int64, input tasksrepo.UpdateTask) (tasksrepo.Task, error) {
	var sets []string
	args := pgx.NamedArgs{
		"id": id,
	}

	if input.Name != nil {
		sets = append(sets, "name = @name")
		args["name"] = *input.Name
	}
	if input.Completed != nil {
		sets = append(sets, "completed = @completed")
		args["completed"] = *input.Completed
	}

	if len(sets) == 0 {
		return s.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE tasks
		SET %s
		WHERE id = @id
		RETURNING id, name, completed, created_at`, strings.Join(sets, ", "))

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, fmt.Errorf("task %d: %w", id, tasksrepo.ErrNotFound)
		}
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return task, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks
		WHERE id = @id`

	args := pgx.NamedArgs{
		"id": id,
	}

	tag, err := s.pool.Exec(ctx, query, args)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %d: %w", id, tasksrepo.ErrNotFound)
	}

	return nil
}
