package utils

import (
	"database/sql"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/uptrace/bun"
)

type AppState struct {
	Config      *Config
	RawDB       *sql.DB
	BunDB       *bun.DB
	MetricChans *MetricChans

	// SIGINT/SIGTERM land here, so does a failing HTTP server
	AppCloseSignalChan chan os.Signal

	startedAt time.Time

	shutdownMu   sync.Mutex
	shutdownChs  []chan struct{}
	shutdownDone bool
}

// NewAppState wires config and metric channels. The database is attached by
// the caller through AttachDB since opening it lives in the model package.
func NewAppState(config *Config) *AppState {
	return &AppState{
		Config:             config,
		MetricChans:        NewMetricChans(),
		AppCloseSignalChan: make(chan os.Signal, 1),
		startedAt:          time.Now(),
	}
}

func (as *AppState) AttachDB(rawDB *sql.DB, bunDB *bun.DB) {
	as.RawDB = rawDB
	as.BunDB = bunDB
}

func (as *AppState) GetUptime() time.Duration {
	return time.Since(as.startedAt).Round(time.Second)
}

// CreateGracefulShutdownChan returns a channel closed by GracefulShutdown.
// Background goroutines select on it to stop.
func (as *AppState) CreateGracefulShutdownChan() <-chan struct{} {
	as.shutdownMu.Lock()
	defer as.shutdownMu.Unlock()
	ch := make(chan struct{})
	if as.shutdownDone {
		close(ch)
		return ch
	}
	as.shutdownChs = append(as.shutdownChs, ch)
	return ch
}

// GracefulShutdown stops background goroutines and closes the database.
// Calling it more than once is a no-op.
func (as *AppState) GracefulShutdown() {
	as.shutdownMu.Lock()
	if as.shutdownDone {
		as.shutdownMu.Unlock()
		return
	}
	as.shutdownDone = true
	for _, ch := range as.shutdownChs {
		close(ch)
	}
	as.shutdownChs = nil
	as.shutdownMu.Unlock()

	if as.BunDB != nil {
		if err := as.BunDB.Close(); err != nil {
			slog.Warn("can't close database", "error", err)
		}
	}
}
