// Package app runs the calendar reducer against a live API: it executes
// the effects Reduce emits and feeds their outcomes back as intents.
package app

import (
	"context"
	"log/slog"
	"time"

	"eventcal/src-client/calendar"
)

// EventAPI is the slice of the HTTP client the controller needs.
type EventAPI interface {
	List(ctx context.Context, month time.Time) ([]calendar.Event, error)
	Create(ctx context.Context, payload calendar.Payload) (int64, error)
	Update(ctx context.Context, id int64, payload calendar.Payload) error
	Delete(ctx context.Context, id int64) error
}

// Notifier shows a blocking message to the user.
type Notifier interface {
	Notify(msg string)
}

type NotifierFunc func(msg string)

func (f NotifierFunc) Notify(msg string) { f(msg) }

// Controller owns the current State. It isn't safe for concurrent use;
// every Dispatch runs to completion, network calls included.
type Controller struct {
	api      EventAPI
	notifier Notifier
	state    calendar.State
}

// NewController starts on the month containing now and loads it.
func NewController(ctx context.Context, api EventAPI, notifier Notifier, now time.Time, loc *time.Location) *Controller {
	c := &Controller{api: api, notifier: notifier}
	state, effects := calendar.NewState(now, loc)
	c.state = state
	c.run(ctx, effects)
	return c
}

func (c *Controller) State() calendar.State { return c.state }

// Dispatch reduces intent and carries out the resulting effects until none
// remain.
func (c *Controller) Dispatch(ctx context.Context, intent calendar.Intent) calendar.State {
	state, effects := calendar.Reduce(c.state, intent)
	c.state = state
	c.run(ctx, effects)
	return c.state
}

func (c *Controller) run(ctx context.Context, effects []calendar.Effect) {
	queue := append([]calendar.Effect(nil), effects...)
	for len(queue) > 0 {
		effect := queue[0]
		queue = queue[1:]

		followUp := c.execute(ctx, effect)
		if followUp == nil {
			continue
		}
		state, more := calendar.Reduce(c.state, followUp)
		c.state = state
		queue = append(queue, more...)
	}
}

// execute performs one effect and returns the intent describing its
// outcome, or nil when there is none.
func (c *Controller) execute(ctx context.Context, effect calendar.Effect) calendar.Intent {
	switch e := effect.(type) {
	case calendar.LoadMonth:
		events, err := c.api.List(ctx, e.Month)
		if err != nil {
			slog.Warn("can't load month", "month", e.Month.Format("2006-01"), "error", err)
			return calendar.LoadFailed{Err: err}
		}
		return calendar.EventsLoaded{Month: e.Month, Events: events}
	case calendar.CreateEvent:
		id, err := c.api.Create(ctx, e.Payload)
		if err != nil {
			return calendar.MutationFailed{Err: err}
		}
		slog.Debug("event created", "id", id)
		return calendar.MutationSucceeded{}
	case calendar.UpdateEvent:
		if err := c.api.Update(ctx, e.ID, e.Payload); err != nil {
			return calendar.MutationFailed{Err: err}
		}
		slog.Debug("event updated", "id", e.ID)
		return calendar.MutationSucceeded{}
	case calendar.DeleteEvent:
		if err := c.api.Delete(ctx, e.ID); err != nil {
			return calendar.MutationFailed{Err: err}
		}
		slog.Debug("event deleted", "id", e.ID)
		return calendar.MutationSucceeded{}
	case calendar.Notify:
		if c.notifier != nil {
			c.notifier.Notify(e.Message)
		}
	}
	return nil
}
