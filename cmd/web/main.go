package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"thirdcoast.systems/reelscout/cmd/web/auth"
	"thirdcoast.systems/reelscout/cmd/web/internal/web"
	"thirdcoast.systems/reelscout/internal/application"
	"thirdcoast.systems/reelscout/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting web service")

	conf, err := config.LoadConfig(ctx)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	app, err := application.New(ctx, *conf)
	if err != nil {
		slog.Error("failed to initialize services", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	sessionMgr := auth.NewSessionManager(conf.SessionSecret, conf.WorkspaceTTL)

	e, err := web.NewWebserver(sessionMgr, app.Finder, app.Videos, app.Workspaces)
	if err != nil {
		slog.Error("failed to create webserver", "error", err)
		os.Exit(1)
	}

	addr := ":" + strconv.Itoa(conf.WebServerPort)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	slog.Info("Listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		// Echo returns an error on Shutdown; treat it as normal if context is done.
		if ctx.Err() != nil {
			return
		}
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
