package metric

import (
	"log/slog"
	"time"

	"eventcal/src-server/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequests counts API responses by route pattern and status code.
var HTTPRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "eventcal_http_requests_total",
		Help: "Total HTTP requests served, by route and status",
	},
	[]string{"route", "status"},
)

func newGauge(name, help string) prometheus.Gauge {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: name,
		Help: help,
	})
	if err := prometheus.Register(gauge); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			slog.Error("can't register metric", "metric", name, "error", err)
			return gauge
		}
		gauge = are.ExistingCollector.(prometheus.Gauge)
	}
	slog.Debug("metric registered", "metric", name)
	gauge.Set(0)
	return gauge
}

func unregister(name string, collector prometheus.Collector) {
	switch prometheus.Unregister(collector) {
	case true:
		slog.Debug("metric unregistered", "metric", name)
	case false:
		slog.Warn("metric not registered", "metric", name)
	}
}

func databaseEmptyRead(as *utils.AppState, tickerInterval time.Duration) {
	name := "eventcal_database_empty_read_microsec"
	gauge := newGauge(name, "The latency of an empty database read in microseconds")
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		ticker := time.NewTicker(tickerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gracefulShutdownCh:
				unregister(name, gauge)
				return
			case <-ticker.C:
				latency, err := database(as)
				if err != nil {
					slog.Error("can't get database latency", "error", err)
					continue
				}
				gauge.Set(float64(latency.Microseconds()))
			}
		}
	}()
}

// latencyGauge keeps the last sample from ch and falls back to 0 when no
// sample arrived for clearTickerInterval.
func latencyGauge(as *utils.AppState, name, help string, ch <-chan float64, clearTickerInterval time.Duration) {
	gauge := newGauge(name, help)
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		clearTicker := time.NewTicker(clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-gracefulShutdownCh:
				unregister(name, gauge)
				return
			case latency := <-ch:
				gauge.Set(latency)
				clearTicker.Reset(clearTickerInterval)
			case <-clearTicker.C:
				gauge.Set(0)
			}
		}
	}()
}

func Init(as *utils.AppState) {
	tickerInterval := as.Config.GetMetricCollectionInterval()
	clearTickerInterval := tickerInterval * 2

	databaseEmptyRead(as, tickerInterval)
	latencyGauge(as,
		"eventcal_database_read_microsec",
		"The latency of a database read in microseconds",
		as.MetricChans.DatabaseRead, clearTickerInterval)
	latencyGauge(as,
		"eventcal_database_write_microsec",
		"The latency of a database write in microseconds",
		as.MetricChans.DatabaseWrite, clearTickerInterval)
}
