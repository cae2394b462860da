package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventcal/src-server/gateway"
	"eventcal/src-server/metric"
	"eventcal/src-server/model"
	"eventcal/src-server/route"
	"eventcal/src-server/utils"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

// raised or lowered once LOG_LEVEL is known
var logLevel = new(slog.LevelVar)

func init() {
	logLevel.Set(slog.LevelDebug)
	if err := godotenv.Load(); err != nil {
		slog.Info(err.Error())
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func main() {
	as := utils.NewAppState(utils.NewConfig())
	logLevel.Set(as.Config.GetLogLevel())

	rawDB, bunDB, err := model.OpenDB(as.Config.GetDBPath())
	if err != nil {
		slog.Error("can't open database", "path", as.Config.GetDBPath(), "error", err)
		os.Exit(1)
	}
	as.AttachDB(rawDB, bunDB)

	if err := model.CreateSchema(context.Background(), as.BunDB); err != nil {
		slog.Error("can't create database schema", "error", err)
		os.Exit(1)
	}

	metric.Init(as)

	gw := gateway.New(as.BunDB, as.Config.GetLocation(), gateway.WithMetrics(as.MetricChans))
	server := &http.Server{
		Addr:              ":" + as.Config.GetPort(),
		Handler:           route.NewHandler(as, gw),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// http server
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("cannot start HTTP server", "error", err)
			as.AppCloseSignalChan <- syscall.SIGTERM
		}
	}()

	slog.Info("app is now running, press Ctrl+C to exit", "port", as.Config.GetPort())

	signal.Notify(as.AppCloseSignalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-as.AppCloseSignalChan

	slog.Info("Gracefully shutting down...", "uptime", as.GetUptime())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Warn("can't shut down HTTP server cleanly", "error", err)
	}
	as.GracefulShutdown()
}
