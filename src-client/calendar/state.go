package calendar

import (
	"time"
)

// State is the whole client view-model. Reduce never mutates a State in
// place; Events in particular is replaced, not edited.
type State struct {
	Loc      *time.Location
	Current  time.Time // 1st of the displayed month, local midnight
	Selected time.Time // local midnight of the selected day
	Events   []Event   // the displayed month as last loaded
	Dialog   Dialog
}

// NewState starts on the month containing now with today selected. The
// caller should run the returned effect to hydrate Events.
func NewState(now time.Time, loc *time.Location) (State, []Effect) {
	if loc == nil {
		loc = time.Local
	}
	s := State{
		Loc:      loc,
		Current:  StartOfMonth(now, loc),
		Selected: StartOfDay(now, loc),
	}
	return s, []Effect{s.loadEffect()}
}

func (s State) loadEffect() Effect {
	return LoadMonth{Month: s.Current}
}

// FindEvent looks an event up in the loaded month.
func (s State) FindEvent(id int64) (Event, bool) {
	for _, e := range s.Events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

// Reduce applies one intent. Unknown or inapplicable intents return s
// unchanged with no effects.
func Reduce(s State, intent Intent) (State, []Effect) {
	switch in := intent.(type) {
	case NavigatePrev:
		return s.navigate(-1)
	case NavigateNext:
		return s.navigate(1)
	case GoToday:
		s.Current = StartOfMonth(in.Now, s.Loc)
		s.Selected = StartOfDay(in.Now, s.Loc)
		return s, []Effect{s.loadEffect()}
	case SelectDay:
		s.Selected = StartOfDay(in.Day, s.Loc)
		return s, nil

	case OpenCreate:
		if s.Dialog.IsOpen() {
			return s, nil
		}
		s.Dialog = Dialog{Mode: DialogCreatingNew, Form: newCreateForm(s.Selected, s.Loc)}
		return s, nil
	case OpenEdit:
		if s.Dialog.IsOpen() {
			return s, nil
		}
		e, ok := s.FindEvent(in.ID)
		if !ok {
			return s, nil
		}
		s.Dialog = Dialog{Mode: DialogEditingExisting, EditingID: e.ID, Form: newEditForm(e, s.Loc)}
		return s, nil
	case Cancel:
		s.Dialog = Dialog{}
		return s, nil

	case Submit:
		if !s.Dialog.IsOpen() || s.Dialog.Submitting {
			return s, nil
		}
		s.Dialog.Form = in.Form
		payload, err := in.Form.Payload(s.Loc)
		if err != nil {
			s.Dialog.Err = err.Error()
			return s, []Effect{Notify{Message: err.Error()}}
		}
		s.Dialog.Err = ""
		s.Dialog.Submitting = true
		if s.Dialog.Mode == DialogEditingExisting {
			return s, []Effect{UpdateEvent{ID: s.Dialog.EditingID, Payload: payload}}
		}
		return s, []Effect{CreateEvent{Payload: payload}}
	case Delete:
		if s.Dialog.Mode != DialogEditingExisting || s.Dialog.Submitting {
			return s, nil
		}
		s.Dialog.Err = ""
		s.Dialog.Submitting = true
		return s, []Effect{DeleteEvent{ID: s.Dialog.EditingID}}

	case MutationSucceeded:
		s.Dialog = Dialog{}
		s.Events = nil
		return s, []Effect{s.loadEffect()}
	case MutationFailed:
		msg := errMessage(in.Err)
		if s.Dialog.IsOpen() {
			s.Dialog.Submitting = false
			s.Dialog.Err = msg
		}
		return s, []Effect{Notify{Message: msg}}

	case EventsLoaded:
		// a load for a month we already left is stale
		if !in.Month.Equal(s.Current) {
			return s, nil
		}
		s.Events = append([]Event(nil), in.Events...)
		return s, nil
	case LoadFailed:
		return s, []Effect{Notify{Message: errMessage(in.Err)}}
	}
	return s, nil
}

func (s State) navigate(n int) (State, []Effect) {
	s.Current = AddMonths(s.Current, n, s.Loc)
	s.Selected = s.Current
	return s, []Effect{s.loadEffect()}
}

func errMessage(err error) string {
	if err == nil {
		return "Unknown error"
	}
	return err.Error()
}
