package calendar

import "time"

// Intent is a user action or a network outcome fed back into Reduce.
type Intent interface{ isIntent() }

type (
	NavigatePrev struct{}
	NavigateNext struct{}
	GoToday      struct{ Now time.Time }
	SelectDay    struct{ Day time.Time }

	OpenCreate struct{}
	OpenEdit   struct{ ID int64 }
	Cancel     struct{}
	Submit     struct{ Form Form }
	Delete     struct{}

	MutationSucceeded struct{}
	MutationFailed    struct{ Err error }
	EventsLoaded      struct {
		Month  time.Time
		Events []Event
	}
	LoadFailed struct{ Err error }
)

func (NavigatePrev) isIntent()      {}
func (NavigateNext) isIntent()      {}
func (GoToday) isIntent()           {}
func (SelectDay) isIntent()         {}
func (OpenCreate) isIntent()        {}
func (OpenEdit) isIntent()          {}
func (Cancel) isIntent()            {}
func (Submit) isIntent()            {}
func (Delete) isIntent()            {}
func (MutationSucceeded) isIntent() {}
func (MutationFailed) isIntent()    {}
func (EventsLoaded) isIntent()      {}
func (LoadFailed) isIntent()        {}

// Effect is work Reduce asks the runtime to perform.
type Effect interface{ isEffect() }

type (
	// LoadMonth fetches the month starting at Month and answers with
	// EventsLoaded or LoadFailed.
	LoadMonth struct{ Month time.Time }
	// CreateEvent, UpdateEvent and DeleteEvent answer with
	// MutationSucceeded or MutationFailed.
	CreateEvent struct{ Payload Payload }
	UpdateEvent struct {
		ID      int64
		Payload Payload
	}
	DeleteEvent struct{ ID int64 }
	// Notify surfaces a blocking message to the user.
	Notify struct{ Message string }
)

func (LoadMonth) isEffect()   {}
func (CreateEvent) isEffect() {}
func (UpdateEvent) isEffect() {}
func (DeleteEvent) isEffect() {}
func (Notify) isEffect()      {}
