package gateway

import (
	"context"
	"fmt"
	"time"

	"eventcal/src-server/model"
	"eventcal/src-server/utils"

	"github.com/uptrace/bun"
)

// Gateway validates event operations and runs each one as exactly one
// parameterized statement against db.
type Gateway struct {
	db      bun.IDB
	loc     *time.Location
	now     func() time.Time
	metrics *utils.MetricChans
}

type Option func(*Gateway)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Gateway) { g.now = now }
}

// WithMetrics reports statement latencies to the given channels.
func WithMetrics(m *utils.MetricChans) Option {
	return func(g *Gateway) { g.metrics = m }
}

// New returns a Gateway whose month boundaries follow loc's wall clock.
func New(db bun.IDB, loc *time.Location, opts ...Option) *Gateway {
	if loc == nil {
		loc = time.Local
	}
	g := &Gateway{db: db, loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) Location() *time.Location { return g.loc }

// List returns the events starting inside the month named by token,
// ordered by start. A month without events yields an empty slice.
func (g *Gateway) List(ctx context.Context, token string) ([]model.Event, error) {
	month, err := ParseMonth(token)
	if err != nil {
		return nil, err
	}
	return g.ListMonth(ctx, month)
}

func (g *Gateway) ListMonth(ctx context.Context, month Month) ([]model.Event, error) {
	start, end := month.Range(g.loc)

	startTimer := time.Now()
	events, err := model.ListEventsInRange(ctx, g.db, start, end)
	if err != nil {
		return nil, fmt.Errorf("Gateway.List: %w", err)
	}
	g.metrics.ObserveRead(startTimer)
	return events, nil
}

// Create validates p and inserts a new event, returning its id.
func (g *Gateway) Create(ctx context.Context, p Payload) (int64, error) {
	valid, err := p.validate()
	if err != nil {
		return 0, err
	}

	now := g.now().UTC().UnixMilli()
	eventModel := &model.Event{
		Title:              valid.title,
		Memo:               valid.memo,
		StartAtUnixMilli:   valid.startAt.UnixMilli(),
		EndAtUnixMilli:     valid.endAt.UnixMilli(),
		CreatedAtUnixMilli: now,
		UpdatedAtUnixMilli: now,
	}

	startTimer := time.Now()
	if err := eventModel.Insert(ctx, g.db); err != nil {
		return 0, fmt.Errorf("Gateway.Create: %w", err)
	}
	g.metrics.ObserveWrite(startTimer)
	return eventModel.ID, nil
}

// Update validates p and overwrites the event with the given id.
func (g *Gateway) Update(ctx context.Context, id int64, p Payload) error {
	valid, err := p.validate()
	if err != nil {
		return err
	}

	eventModel := &model.Event{
		ID:                 id,
		Title:              valid.title,
		Memo:               valid.memo,
		StartAtUnixMilli:   valid.startAt.UnixMilli(),
		EndAtUnixMilli:     valid.endAt.UnixMilli(),
		UpdatedAtUnixMilli: g.now().UTC().UnixMilli(),
	}

	startTimer := time.Now()
	found, err := eventModel.Update(ctx, g.db)
	if err != nil {
		return fmt.Errorf("Gateway.Update: %w", err)
	}
	g.metrics.ObserveWrite(startTimer)
	if !found {
		return &NotFoundError{ID: id}
	}
	return nil
}

// Delete removes the event with the given id.
func (g *Gateway) Delete(ctx context.Context, id int64) error {
	startTimer := time.Now()
	found, err := model.DeleteEvent(ctx, g.db, id)
	if err != nil {
		return fmt.Errorf("Gateway.Delete: %w", err)
	}
	g.metrics.ObserveWrite(startTimer)
	if !found {
		return &NotFoundError{ID: id}
	}
	return nil
}
