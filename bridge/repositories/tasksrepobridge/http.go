package tasksrepobridge

import (
	"github.com/jrazmi/taskpad/core/repositories/tasksrepo"
	"github.com/jrazmi/taskpad/infrastructure/web"
	"github.com/jrazmi/taskpad/sdk/logger"
)

// Config holds configuration for the Task bridge
type Config struct {
	Log        *logger.Logger
	Repository *tasksrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Task. The {$} anchor keeps
// the collection route from swallowing the item routes on the subtree.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/tasks/{$}", b.httpList, cfg.Middleware...)
	group.POST("/tasks/{$}", b.httpCreate, cfg.Middleware...)
	group.GET("/tasks/{task_id}/{$}", b.httpGetByID, cfg.Middleware...)
	group.PUT("/tasks/{task_id}/{$}", b.httpReplace, cfg.Middleware...)
	group.PATCH("/tasks/{task_id}/{$}", b.httpUpdate, cfg.Middleware...)
	group.DELETE("/tasks/{task_id}/{$}", b.httpDelete, cfg.Middleware...)
}
