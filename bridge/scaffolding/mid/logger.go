package mid

import (
	"context"
	"net/http"
	"time"

	"github.com/jrazmi/taskpad/infrastructure/web"
	"github.com/jrazmi/taskpad/sdk/logger"
)

// Logger writes information about the request to the logs.
func Logger(log *logger.Logger) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			now := time.Now()

			path := r.URL.Path
			if r.URL.RawQuery != "" {
				path = path + "?" + r.URL.RawQuery
			}

			log.InfoContext(ctx, "request started",
				"method", r.Method, "path", path, "remoteaddr", r.RemoteAddr)

			resp := next(ctx, r)

			log.InfoContext(ctx, "request completed",
				"method", r.Method, "path", path, "remoteaddr", r.RemoteAddr,
				"statuscode", web.StatusOf(resp), "since", time.Since(now).String())

			return resp
		}
	}
}
