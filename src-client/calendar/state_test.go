package calendar_test

import (
	"errors"
	"testing"
	"time"

	"eventcal/src-client/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateLoadsCurrentMonth(t *testing.T) {
	loc := time.UTC
	s, effects := calendar.NewState(at(t, loc, "2026-02-17 13:20"), loc)

	assert.Equal(t, at(t, loc, "2026-02-01 00:00"), s.Current)
	assert.Equal(t, at(t, loc, "2026-02-17 00:00"), s.Selected)
	assert.Equal(t, []calendar.Effect{calendar.LoadMonth{Month: s.Current}}, effects)
	assert.Equal(t, calendar.DialogClosed, s.Dialog.Mode)
}

func TestNavigateShiftsByCalendarMonth(t *testing.T) {
	loc := time.UTC
	s, _ := calendar.NewState(at(t, loc, "2026-01-31 10:00"), loc)

	next, effects := calendar.Reduce(s, calendar.NavigateNext{})
	assert.Equal(t, at(t, loc, "2026-02-01 00:00"), next.Current)
	assert.Equal(t, next.Current, next.Selected)
	assert.Equal(t, []calendar.Effect{calendar.LoadMonth{Month: next.Current}}, effects)
	// the input state is untouched
	assert.Equal(t, at(t, loc, "2026-01-01 00:00"), s.Current)

	prev, _ := calendar.Reduce(s, calendar.NavigatePrev{})
	assert.Equal(t, at(t, loc, "2025-12-01 00:00"), prev.Current)
	assert.Equal(t, "2025-12", calendar.MonthToken(prev.Current, loc))
}

func TestSelectDayIsLocal(t *testing.T) {
	loc := time.UTC
	s, _ := calendar.NewState(at(t, loc, "2026-02-01 10:00"), loc)

	next, effects := calendar.Reduce(s, calendar.SelectDay{Day: at(t, loc, "2026-02-20 18:00")})
	assert.Empty(t, effects)
	assert.Equal(t, at(t, loc, "2026-02-20 00:00"), next.Selected)
	assert.Equal(t, s.Current, next.Current)
}

func TestGoToday(t *testing.T) {
	loc := time.UTC
	s, _ := calendar.NewState(at(t, loc, "2026-02-01 10:00"), loc)

	next, effects := calendar.Reduce(s, calendar.GoToday{Now: at(t, loc, "2026-10-19 08:00")})
	assert.Equal(t, at(t, loc, "2026-10-01 00:00"), next.Current)
	assert.Equal(t, at(t, loc, "2026-10-19 00:00"), next.Selected)
	assert.Len(t, effects, 1)
}

func TestOpenCreatePrefillsSelectedDay(t *testing.T) {
	loc := time.UTC
	s := stateFor(t, loc, "2026-02-01 00:00", "2026-02-14 00:00")

	next, effects := calendar.Reduce(s, calendar.OpenCreate{})
	assert.Empty(t, effects)
	assert.Equal(t, calendar.DialogCreatingNew, next.Dialog.Mode)
	assert.Equal(t, calendar.Form{Date: "2026-02-14", Start: "09:00", End: "10:00"}, next.Dialog.Form)
}

func TestOpenEditPrefillsLocalFields(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	e := calendar.Event{ID: 7, Title: "Focus", Memo: "deep",
		StartAt: time.Date(2026, 2, 2, 23, 30, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 2, 3, 1, 0, 0, 0, time.UTC)}
	s := stateFor(t, tokyo, "2026-02-01 00:00", "2026-02-03 00:00", e)

	next, _ := calendar.Reduce(s, calendar.OpenEdit{ID: 7})
	assert.Equal(t, calendar.DialogEditingExisting, next.Dialog.Mode)
	assert.Equal(t, int64(7), next.Dialog.EditingID)
	assert.Equal(t, calendar.Form{Title: "Focus", Date: "2026-02-03", Start: "08:30", End: "10:00", Memo: "deep"}, next.Dialog.Form)

	missing, _ := calendar.Reduce(s, calendar.OpenEdit{ID: 8})
	assert.Equal(t, calendar.DialogClosed, missing.Dialog.Mode)
}

func TestEditOvernightEventNeedsNewTimes(t *testing.T) {
	loc := time.UTC
	e := ev(t, loc, 3, "Night shift", "2026-02-10 22:00", "2026-02-11 06:00")
	s := stateFor(t, loc, "2026-02-01 00:00", "2026-02-10 00:00", e)

	s, _ = calendar.Reduce(s, calendar.OpenEdit{ID: 3})
	assert.Equal(t, calendar.Form{Title: "Night shift", Date: "2026-02-10", Start: "22:00", End: "06:00"}, s.Dialog.Form)

	// the end time lands on the start date
	form := s.Dialog.Form
	form.Title = "Late shift"
	next, effects := calendar.Reduce(s, calendar.Submit{Form: form})
	assert.Equal(t, calendar.ErrEndBeforeStart.Error(), next.Dialog.Err)
	assert.Equal(t, []calendar.Effect{calendar.Notify{Message: calendar.ErrEndBeforeStart.Error()}}, effects)
	assert.False(t, next.Dialog.Submitting)
}

func TestSubmitCreate(t *testing.T) {
	loc := time.UTC
	s := stateFor(t, loc, "2026-02-01 00:00", "2026-02-02 00:00")
	s, _ = calendar.Reduce(s, calendar.OpenCreate{})

	form := calendar.Form{Title: " Focus ", Date: "2026-02-02", Start: "09:00", End: "10:00", Memo: " deep "}
	next, effects := calendar.Reduce(s, calendar.Submit{Form: form})
	require.Len(t, effects, 1)
	assert.Equal(t, calendar.CreateEvent{Payload: calendar.Payload{
		Title:   "Focus",
		StartAt: "2026-02-02T09:00:00.000Z",
		EndAt:   "2026-02-02T10:00:00.000Z",
		Memo:    "deep",
	}}, effects[0])
	assert.True(t, next.Dialog.Submitting)
	assert.True(t, next.Dialog.IsOpen())

	// a second click while in flight does nothing
	again, effects := calendar.Reduce(next, calendar.Submit{Form: form})
	assert.Empty(t, effects)
	assert.Equal(t, next, again)
}

func TestSubmitUpdateUsesEditingID(t *testing.T) {
	loc := time.UTC
	e := ev(t, loc, 42, "Focus", "2026-02-02 09:00", "2026-02-02 10:00")
	s := stateFor(t, loc, "2026-02-01 00:00", "2026-02-02 00:00", e)
	s, _ = calendar.Reduce(s, calendar.OpenEdit{ID: 42})

	form := s.Dialog.Form
	form.Title = "Focus renamed"
	_, effects := calendar.Reduce(s, calendar.Submit{Form: form})
	require.Len(t, effects, 1)
	update, ok := effects[0].(calendar.UpdateEvent)
	require.True(t, ok)
	assert.Equal(t, int64(42), update.ID)
	assert.Equal(t, "Focus renamed", update.Payload.Title)
	assert.Equal(t, "2026-02-02T09:00:00.000Z", update.Payload.StartAt)
}

func TestSubmitLocalValidation(t *testing.T) {
	loc := time.UTC
	s := stateFor(t, loc, "2026-02-01 00:00", "2026-02-02 00:00")
	s, _ = calendar.Reduce(s, calendar.OpenCreate{})

	for _, tc := range []struct {
		form calendar.Form
		err  error
	}{
		{calendar.Form{Title: "  ", Date: "2026-02-02", Start: "09:00", End: "10:00"}, calendar.ErrTitleRequired},
		{calendar.Form{Title: "x", Date: "2026-02-30", Start: "09:00", End: "10:00"}, calendar.ErrInvalidDate},
		{calendar.Form{Title: "x", Date: "2026-02-02", Start: "9am", End: "10:00"}, calendar.ErrInvalidDate},
		{calendar.Form{Title: "x", Date: "2026-02-02", Start: "10:00", End: "10:00"}, calendar.ErrEndBeforeStart},
		{calendar.Form{Title: "x", Date: "2026-02-02", Start: "11:00", End: "10:00"}, calendar.ErrEndBeforeStart},
	} {
		next, effects := calendar.Reduce(s, calendar.Submit{Form: tc.form})
		assert.Equal(t, []calendar.Effect{calendar.Notify{Message: tc.err.Error()}}, effects)
		assert.Equal(t, tc.err.Error(), next.Dialog.Err)
		assert.False(t, next.Dialog.Submitting)
		assert.Equal(t, calendar.DialogCreatingNew, next.Dialog.Mode)
		assert.Equal(t, tc.form, next.Dialog.Form)
	}
}

func TestSubmitWhenClosedIsIgnored(t *testing.T) {
	loc := time.UTC
	s := stateFor(t, loc, "2026-02-01 00:00", "2026-02-02 00:00")
	_, effects := calendar.Reduce(s, calendar.Submit{Form: calendar.Form{Title: "x"}})
	assert.Empty(t, effects)
	_, effects = calendar.Reduce(s, calendar.Delete{})
	assert.Empty(t, effects)
}

func TestDeleteOnlyWhileEditing(t *testing.T) {
	loc := time.UTC
	e := ev(t, loc, 3, "Dentist", "2026-02-02 09:00", "2026-02-02 10:00")
	s := stateFor(t, loc, "2026-02-01 00:00", "2026-02-02 00:00", e)

	creating, _ := calendar.Reduce(s, calendar.OpenCreate{})
	_, effects := calendar.Reduce(creating, calendar.Delete{})
	assert.Empty(t, effects)

	editing, _ := calendar.Reduce(s, calendar.OpenEdit{ID: 3})
	deleting, effects := calendar.Reduce(editing, calendar.Delete{})
	assert.Equal(t, []calendar.Effect{calendar.DeleteEvent{ID: 3}}, effects)
	assert.True(t, deleting.Dialog.Submitting)
}

func TestMutationOutcome(t *testing.T) {
	loc := time.UTC
	e := ev(t, loc, 3, "Dentist", "2026-02-02 09:00", "2026-02-02 10:00")
	s := stateFor(t, loc, "2026-02-01 00:00", "2026-02-02 00:00", e)
	s, _ = calendar.Reduce(s, calendar.OpenEdit{ID: 3})
	s, _ = calendar.Reduce(s, calendar.Delete{})

	failed, effects := calendar.Reduce(s, calendar.MutationFailed{Err: errors.New("event not found")})
	assert.Equal(t, []calendar.Effect{calendar.Notify{Message: "event not found"}}, effects)
	assert.Equal(t, calendar.DialogEditingExisting, failed.Dialog.Mode)
	assert.False(t, failed.Dialog.Submitting)
	assert.Equal(t, "event not found", failed.Dialog.Err)
	assert.Equal(t, s.Events, failed.Events)

	done, effects := calendar.Reduce(s, calendar.MutationSucceeded{})
	assert.Equal(t, calendar.DialogClosed, done.Dialog.Mode)
	assert.Nil(t, done.Events)
	assert.Equal(t, []calendar.Effect{calendar.LoadMonth{Month: s.Current}}, effects)
}

func TestCancelClosesDialog(t *testing.T) {
	loc := time.UTC
	s := stateFor(t, loc, "2026-02-01 00:00", "2026-02-02 00:00")
	s, _ = calendar.Reduce(s, calendar.OpenCreate{})
	closed, effects := calendar.Reduce(s, calendar.Cancel{})
	assert.Empty(t, effects)
	assert.Equal(t, calendar.Dialog{}, closed.Dialog)
}

func TestEventsLoaded(t *testing.T) {
	loc := time.UTC
	s := stateFor(t, loc, "2026-02-01 00:00", "2026-02-02 00:00")
	events := []calendar.Event{ev(t, loc, 1, "a", "2026-02-02 09:00", "2026-02-02 10:00")}

	stale, _ := calendar.Reduce(s, calendar.EventsLoaded{Month: at(t, loc, "2026-01-01 00:00"), Events: events})
	assert.Empty(t, stale.Events)

	loaded, _ := calendar.Reduce(s, calendar.EventsLoaded{Month: s.Current, Events: events})
	assert.Equal(t, events, loaded.Events)

	kept, effects := calendar.Reduce(loaded, calendar.LoadFailed{Err: errors.New("offline")})
	assert.Equal(t, loaded.Events, kept.Events)
	assert.Equal(t, []calendar.Effect{calendar.Notify{Message: "offline"}}, effects)
}
