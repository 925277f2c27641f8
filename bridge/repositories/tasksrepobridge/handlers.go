package tasksrepobridge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jrazmi/taskpad/bridge/scaffolding/errs"
	"github.com/jrazmi/taskpad/core/repositories/tasksrepo"
	"github.com/jrazmi/taskpad/infrastructure/web"
)

// parseTaskID reads the task_id path parameter. The id is a positive
// integer; anything else is a bad request, not a not-found.
func parseTaskID(r *http.Request) (int64, error) {
	raw := web.Param(r, "task_id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("task_id must be a positive integer, got %q", raw)
	}

	return id, nil
}

// notFound is the contract for a missing task on item routes: an empty
// JSON object with a 404 status. It is a normal outcome, so it does not
// go through the errors middleware.
func notFound() web.Encoder {
	return web.NewJSONResponseWithStatus(struct{}{}, http.StatusNotFound)
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	tasks, err := b.tasksRepository.List(ctx)
	if err != nil {
		return errs.Newf(errs.Internal, "list tasks: %s", err)
	}

	return web.NewJSONResponse(MarshalListToBridge(tasks))
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parseTaskID(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	task, err := b.tasksRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tasksrepo.ErrNotFound) {
			return notFound()
		}
		return errs.Newf(errs.Internal, "get task: %s", err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	task, err := b.tasksRepository.Create(ctx, MarshalCreateToRepository(input))
	if err != nil {
		return errs.Newf(errs.Internal, "create task: %s", err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpReplace(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parseTaskID(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	var input CreateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	task, err := b.tasksRepository.Replace(ctx, id, MarshalCreateToRepository(input))
	if err != nil {
		if errors.Is(err, tasksrepo.ErrNotFound) {
			return notFound()
		}
		return errs.Newf(errs.Internal, "replace task: %s", err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parseTaskID(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	var input UpdateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	task, err := b.tasksRepository.Update(ctx, id, MarshalUpdateToRepository(input))
	if err != nil {
		if errors.Is(err, tasksrepo.ErrNotFound) {
			return notFound()
		}
		return errs.Newf(errs.Internal, "update task: %s", err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parseTaskID(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	if err := b.tasksRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, tasksrepo.ErrNotFound) {
			return notFound()
		}
		return errs.Newf(errs.Internal, "delete task: %s", err)
	}

	return web.NewJSONResponse(struct{}{})
}
