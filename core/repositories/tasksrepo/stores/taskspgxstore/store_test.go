package taskspgxstore_test

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrazmi/taskpad/core/repositories/tasksrepo"
	"github.com/jrazmi/taskpad/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/jrazmi/taskpad/infrastructure/postgresdb"
	"github.com/jrazmi/taskpad/sdk/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	completed BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// newTestStore connects to the database named by TASKPAD_TEST_DATABASE_URL
// and resets the tasks table. The test is skipped when the variable is
// unset.
func newTestStore(t *testing.T) *taskspgxstore.Store {
	t.Helper()

	conn := os.Getenv("TASKPAD_TEST_DATABASE_URL")
	if conn == "" {
		t.Skip("set TASKPAD_TEST_DATABASE_URL to run store integration tests")
	}

	pool, err := postgresdb.NewTestDB(conn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	ctx := context.Background()
	_, err = pool.Exec(ctx, schema)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, "TRUNCATE tasks RESTART IDENTITY")
	require.NoError(t, err)

	log := logger.NewDefault(logger.WithOutput(io.Discard))
	return taskspgxstore.NewStore(log, pool)
}

func TestStoreCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tasks, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	created, err := store.Create(ctx, tasksrepo.CreateTask{Name: "write report", Completed: false})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "write report", created.Name)
	assert.False(t, created.Completed)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	replaced, err := store.Replace(ctx, created.ID, tasksrepo.CreateTask{Name: "", Completed: true})
	require.NoError(t, err)
	assert.Equal(t, "", replaced.Name)
	assert.True(t, replaced.Completed)
	assert.Equal(t, created.CreatedAt, replaced.CreatedAt)

	name := "follow up"
	updated, err := store.Update(ctx, created.ID, tasksrepo.UpdateTask{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "follow up", updated.Name)
	assert.True(t, updated.Completed)

	noop, err := store.Update(ctx, created.ID, tasksrepo.UpdateTask{})
	require.NoError(t, err)
	assert.Equal(t, updated, noop)

	err = store.Delete(ctx, created.ID)
	require.NoError(t, err)

	tasks, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestStoreListOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"c", "a", "b"} {
		_, err := store.Create(ctx, tasksrepo.CreateTask{Name: name})
		require.NoError(t, err)
	}

	tasks, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for i := 1; i < len(tasks); i++ {
		assert.Less(t, tasks[i-1].ID, tasks[i].ID)
	}
}

func TestStoreNotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	const missing = int64(1 << 40)

	_, err := store.GetByID(ctx, missing)
	assert.ErrorIs(t, err, tasksrepo.ErrNotFound)

	_, err = store.Replace(ctx, missing, tasksrepo.CreateTask{Name: "x"})
	assert.ErrorIs(t, err, tasksrepo.ErrNotFound)

	name := "x"
	_, err = store.Update(ctx, missing, tasksrepo.UpdateTask{Name: &name})
	assert.ErrorIs(t, err, tasksrepo.ErrNotFound)

	err = store.Delete(ctx, missing)
	assert.ErrorIs(t, err, tasksrepo.ErrNotFound)
}
