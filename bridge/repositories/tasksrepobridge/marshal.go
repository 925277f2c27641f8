package tasksrepobridge

import (
	"time"

	"github.com/jrazmi/taskpad/core/repositories/tasksrepo"
)

// MarshalToBridge converts a core model to the wire model.
func MarshalToBridge(task tasksrepo.Task) Task {
	return Task{
		ID:        task.ID,
		Name:      task.Name,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
	}
}

// MarshalListToBridge converts a list of core models to wire models. The
// result is never nil so an empty list encodes as [].
func MarshalListToBridge(tasks []tasksrepo.Task) []Task {
	bridgeTasks := make([]Task, len(tasks))
	for i, task := range tasks {
		bridgeTasks[i] = MarshalToBridge(task)
	}
	return bridgeTasks
}

// MarshalCreateToRepository converts validated create input to the
// repository input. Validate guarantees the pointers are set.
func MarshalCreateToRepository(input CreateTaskInput) tasksrepo.CreateTask {
	return tasksrepo.CreateTask{
		Name:      *input.Name,
		Completed: *input.Completed,
	}
}

// MarshalUpdateToRepository converts partial-update input to the
// repository input.
func MarshalUpdateToRepository(input UpdateTaskInput) tasksrepo.UpdateTask {
	return tasksrepo.UpdateTask{
		Name:      input.Name,
		Completed: input.Completed,
	}
}
