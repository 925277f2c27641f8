// Package tasksrepobridge exposes task storage over HTTP.
package tasksrepobridge

import (
	"github.com/jrazmi/taskpad/core/repositories/tasksrepo"
)

// bridge provides the HTTP handlers for Task operations.
type bridge struct {
	tasksRepository *tasksrepo.Repository
}

func newBridge(tasksRepository *tasksrepo.Repository) *bridge {
	return &bridge{
		tasksRepository: tasksRepository,
	}
}
