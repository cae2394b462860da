package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"eventcal/src-client/api"
	"eventcal/src-server/gateway"
	"eventcal/src-server/model"
	"eventcal/src-server/route"
	"eventcal/src-server/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tuesday
var now = time.Date(2026, 2, 3, 15, 0, 0, 0, time.UTC)

func TestResolveDay(t *testing.T) {
	parser := newWhenParser()
	for input, want := range map[string]string{
		"":           "2026-02-03",
		"2026-03-09": "2026-03-09",
		"tomorrow":   "2026-02-04",
	} {
		got, err := resolveDay(parser, input, now, time.UTC)
		require.NoError(t, err, input)
		assert.Equal(t, want, got.Format("2006-01-02"), input)
		assert.Equal(t, 0, got.Hour(), input)
	}

	_, err := resolveDay(parser, "zzz", now, time.UTC)
	assert.Error(t, err)
}

func newTestCLI(t *testing.T) (*cli, *bytes.Buffer) {
	t.Helper()
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("STATIC_WEB_CLIENT_DIR", "")

	as := utils.NewAppState(utils.NewConfig())
	rawDB, bunDB, err := model.OpenDB(":memory:")
	require.NoError(t, err)
	as.AttachDB(rawDB, bunDB)
	require.NoError(t, model.CreateSchema(context.Background(), bunDB))
	srv := httptest.NewServer(route.NewHandler(as, gateway.New(bunDB, time.UTC)))
	t.Cleanup(func() {
		srv.Close()
		as.GracefulShutdown()
	})

	var stdout, stderr bytes.Buffer
	return &cli{
		api:    api.NewClient(srv.URL+"/api", srv.Client()),
		when:   newWhenParser(),
		now:    now,
		loc:    time.UTC,
		stdout: &stdout,
		stderr: &stderr,
	}, &stdout
}

func TestCommands(t *testing.T) {
	c, stdout := newTestCLI(t)
	ctx := context.Background()

	require.NoError(t, c.run(ctx, "add", []string{"-title", "Focus", "-start", "09:00", "-end", "10:30", "-memo", "deep work"}))
	assert.Equal(t, "created \"Focus\" on 2026-02-03\n", stdout.String())

	stdout.Reset()
	require.NoError(t, c.run(ctx, "day", nil))
	assert.Contains(t, stdout.String(), "#1  09:00 - 10:30  Focus")
	assert.Contains(t, stdout.String(), "deep work")

	stdout.Reset()
	require.NoError(t, c.run(ctx, "edit", []string{"-id", "1", "-title", "Deep Focus"}))
	assert.Equal(t, "updated #1\n", stdout.String())

	stdout.Reset()
	require.NoError(t, c.run(ctx, "month", []string{"-date", "2026-02-20"}))
	assert.Contains(t, stdout.String(), "February 2026")
	assert.Contains(t, stdout.String(), "Deep Focus")
	assert.NotContains(t, stdout.String(), "No events")

	stdout.Reset()
	require.NoError(t, c.run(ctx, "delete", []string{"-id", "1"}))
	assert.Equal(t, "deleted #1\n", stdout.String())

	stdout.Reset()
	require.NoError(t, c.run(ctx, "day", nil))
	assert.Contains(t, stdout.String(), "No events")
}

func TestCommandErrors(t *testing.T) {
	c, _ := newTestCLI(t)
	ctx := context.Background()

	assert.EqualError(t, c.run(ctx, "add", []string{"-start", "09:00"}), "title required")
	assert.EqualError(t, c.run(ctx, "add", []string{"-title", "x", "-start", "10:00", "-end", "09:00"}), "end must be after start")
	assert.EqualError(t, c.run(ctx, "delete", nil), "-id is required")
	assert.EqualError(t, c.run(ctx, "edit", []string{"-id", "7"}), "event #7 not found in 2026-02")
	assert.EqualError(t, c.run(ctx, "frobnicate", nil), `unknown command "frobnicate"`)
}
