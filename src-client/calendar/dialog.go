package calendar

import (
	"errors"
	"strings"
	"time"
)

type DialogMode int

const (
	DialogClosed DialogMode = iota
	DialogCreatingNew
	DialogEditingExisting
)

func (m DialogMode) String() string {
	switch m {
	case DialogCreatingNew:
		return "creating"
	case DialogEditingExisting:
		return "editing"
	default:
		return "closed"
	}
}

// Form holds the dialog fields as the user typed them.
type Form struct {
	Title string
	Date  string // 2006-01-02
	Start string // 15:04
	End   string // 15:04
	Memo  string
}

type Dialog struct {
	Mode DialogMode
	// EditingID is meaningful only in DialogEditingExisting.
	EditingID int64
	Form      Form
	// Submitting is set while a mutation is in flight; further submits and
	// deletes are ignored until the outcome arrives.
	Submitting bool
	// Err is the last failure shown to the user, cleared on the next try.
	Err string
}

func (d Dialog) IsOpen() bool { return d.Mode != DialogClosed }

var (
	ErrTitleRequired  = errors.New("title required")
	ErrInvalidDate    = errors.New("invalid date or time")
	ErrEndBeforeStart = errors.New("end must be after start")
)

const (
	defaultStart = "09:00"
	defaultEnd   = "10:00"
)

func newCreateForm(selected time.Time, loc *time.Location) Form {
	return Form{
		Date:  selected.In(loc).Format(DateLayout),
		Start: defaultStart,
		End:   defaultEnd,
	}
}

// newEditForm has a single date field, so an event ending on a later local
// day gets its end time on the start date and fails ErrEndBeforeStart until
// the user fixes the times.
func newEditForm(e Event, loc *time.Location) Form {
	start := e.StartAt.In(loc)
	return Form{
		Title: e.Title,
		Date:  start.Format(DateLayout),
		Start: start.Format(TimeLayout),
		End:   e.EndAt.In(loc).Format(TimeLayout),
		Memo:  e.Memo,
	}
}

// Payload checks the form the way the server will (title, then date and
// times, then range) and combines date and times in loc into instants.
func (f Form) Payload(loc *time.Location) (Payload, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return Payload{}, ErrTitleRequired
	}

	date := strings.TrimSpace(f.Date)
	start, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+strings.TrimSpace(f.Start), loc)
	if err != nil {
		return Payload{}, ErrInvalidDate
	}
	end, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+strings.TrimSpace(f.End), loc)
	if err != nil {
		return Payload{}, ErrInvalidDate
	}
	if !end.After(start) {
		return Payload{}, ErrEndBeforeStart
	}

	return Payload{
		Title:   title,
		StartAt: FormatInstant(start),
		EndAt:   FormatInstant(end),
		Memo:    strings.TrimSpace(f.Memo),
	}, nil
}

// FormatInstant renders t as a UTC ISO-8601 instant with milliseconds.
func FormatInstant(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
