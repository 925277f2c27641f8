package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/jrazmi/taskpad/app/taskpad/config"
	"github.com/jrazmi/taskpad/bridge/repositories/tasksrepobridge"
	"github.com/jrazmi/taskpad/bridge/scaffolding/mid"
	"github.com/jrazmi/taskpad/core/repositories/tasksrepo"
	"github.com/jrazmi/taskpad/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/jrazmi/taskpad/infrastructure/postgresdb"
	"github.com/jrazmi/taskpad/infrastructure/web"
	"github.com/jrazmi/taskpad/sdk/logger"
	"github.com/jrazmi/taskpad/sdk/telemetry"
)

var build = "develop"
var appName = "TASKPAD"

func main() {
	godotenv.Load()
	ctx := context.Background()

	log, err := logger.NewFromEnv(appName)
	if err != nil {
		log = logger.NewDefault()
		log.ErrorContext(ctx, "startup", "status", "using default logger", "err", err)
	}

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	// :*: START DATABASES :*:
	pg, err := postgresdb.NewFromEnv(appName, postgresdb.WithLogger(log.Logger))
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pg.Close()
	}()

	// The pool acquires connections lazily, so an unreachable database is
	// logged rather than failing startup; requests fail individually until
	// it comes back.
	if err := postgresdb.StatusCheck(ctx, pg); err != nil {
		log.WarnContext(ctx, "startup", "status", "database unreachable", "err", err)
	}

	// REPOSITORIES //
	log.InfoContext(ctx, "startup", "status", "initializing repository support")
	tasksRepository := tasksrepo.NewRepository(log, taskspgxstore.NewStore(log, pg))

	siteCfg := config.Taskpad{
		Build:     build,
		Logger:    log,
		Telemetry: telemetry.NewTelemetry(),
		Repositories: config.Repositories{
			Tasks: tasksRepository,
		},
	}

	server, err := web.NewServerFromEnv(appName,
		web.WithHandler(webHandler(siteCfg)),
		web.WithErrorLog(logger.NewStdLogger(log, slog.LevelError)),
	)
	if err != nil {
		return fmt.Errorf("webserver: %w", err)
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig.String())
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig.String())

		ctx, cancel := context.WithTimeout(ctx, server.Config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func webHandler(cfg config.Taskpad) http.Handler {
	handler := web.NewWebHandler(
		web.WithLogging(cfg.Logger.Logger),
		web.WithTelemetry(cfg.Telemetry),
		web.WithGlobalMiddleware(
			mid.PublicCORS(),
			mid.Logger(cfg.Logger),
			mid.Errors(cfg.Logger),
			mid.Metrics(),
			mid.Panics(),
		),
	)

	tasksrepobridge.AddHttpRoutes(handler.Group(""), tasksrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Tasks,
	})

	return handler
}
