package metric

import (
	"context"
	"testing"
	"time"

	"eventcal/src-server/model"
	"eventcal/src-server/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gaugeValue runs inside assert.Eventually too, so it reports instead of failing.
func gaugeValue(name string) (float64, bool) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return 0, false
	}
	for _, family := range families {
		if family.GetName() == name && len(family.GetMetric()) > 0 {
			return family.GetMetric()[0].GetGauge().GetValue(), true
		}
	}
	return 0, false
}

func TestGaugesLifecycle(t *testing.T) {
	// long enough that neither ticker fires during the test
	t.Setenv("METRIC_COLLECTION_INTERVAL", "1h")
	t.Setenv("STATIC_WEB_CLIENT_DIR", "")

	as := utils.NewAppState(utils.NewConfig())
	rawDB, bunDB, err := model.OpenDB(":memory:")
	require.NoError(t, err)
	as.AttachDB(rawDB, bunDB)
	require.NoError(t, model.CreateSchema(context.Background(), bunDB))

	Init(as)

	_, ok := gaugeValue("eventcal_database_empty_read_microsec")
	assert.True(t, ok)

	as.MetricChans.DatabaseWrite <- 1234
	assert.Eventually(t, func() bool {
		v, _ := gaugeValue("eventcal_database_write_microsec")
		return v == 1234
	}, time.Second, 10*time.Millisecond)

	as.MetricChans.ObserveRead(time.Now().Add(-2 * time.Millisecond))
	assert.Eventually(t, func() bool {
		v, _ := gaugeValue("eventcal_database_read_microsec")
		return v >= 2000
	}, time.Second, 10*time.Millisecond)

	latency, err := database(as)
	require.NoError(t, err)
	assert.Greater(t, latency, time.Duration(0))

	as.GracefulShutdown()
	assert.Eventually(t, func() bool {
		_, ok := gaugeValue("eventcal_database_write_microsec")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestObserveIsNilSafeAndNonBlocking(t *testing.T) {
	var nilChans *utils.MetricChans
	nilChans.ObserveWrite(time.Now())

	chans := utils.NewMetricChans()
	for i := 0; i < 100; i++ {
		chans.ObserveWrite(time.Now())
	}
	assert.Len(t, chans.DatabaseWrite, cap(chans.DatabaseWrite))
}
