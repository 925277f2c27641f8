package config

import (
	"github.com/jrazmi/taskpad/core/repositories/tasksrepo"
	"github.com/jrazmi/taskpad/sdk/logger"
	"github.com/jrazmi/taskpad/sdk/telemetry"
)

// Repositories represents the specific repositories that this instance of
// taskpad needs.
type Repositories struct {
	Tasks *tasksrepo.Repository
}

// Taskpad is the overall configuration for the taskpad application.
type Taskpad struct {
	Build  string
	Logger *logger.Logger

	Repositories Repositories
	Telemetry    telemetry.Telemetry
}
