package utils

import "time"

// MetricChans carries latency samples (microseconds) from request paths to
// the gauges in the metric package. Sends never block: a sample is dropped
// when no collector is listening.
type MetricChans struct {
	DatabaseRead  chan float64
	DatabaseWrite chan float64
}

func NewMetricChans() *MetricChans {
	return &MetricChans{
		DatabaseRead:  make(chan float64, 16),
		DatabaseWrite: make(chan float64, 16),
	}
}

func (m *MetricChans) ObserveRead(since time.Time) {
	if m == nil {
		return
	}
	send(m.DatabaseRead, since)
}

func (m *MetricChans) ObserveWrite(since time.Time) {
	if m == nil {
		return
	}
	send(m.DatabaseWrite, since)
}

func send(ch chan float64, since time.Time) {
	select {
	case ch <- float64(time.Since(since).Microseconds()):
	default:
	}
}
