// Package calendar projects a month of events onto a calendar grid and a
// day list, and models the add/edit dialog as a pure state machine.
//
// Nothing here performs I/O. User actions are Intents; Reduce maps
// (State, Intent) to a new State plus the Effects a runtime must carry out.
package calendar

import (
	"time"
)

// Event mirrors the server's wire representation of an event.
type Event struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Memo      string    `json:"memo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Payload is the body of a create or update request.
type Payload struct {
	Title   string `json:"title"`
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
	Memo    string `json:"memo"`
}

// DateKey identifies a local calendar date, formatted 2006-01-02.
type DateKey string

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// KeyOf returns the local calendar date of t in loc.
func KeyOf(t time.Time, loc *time.Location) DateKey {
	return DateKey(t.In(loc).Format(DateLayout))
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// StartOfMonth returns local midnight of the 1st of the month containing t.
func StartOfMonth(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
}

// AddMonths shifts a month cursor by n calendar months, day reset to 1.
func AddMonths(month time.Time, n int, loc *time.Location) time.Time {
	local := month.In(loc)
	return time.Date(local.Year(), local.Month()+time.Month(n), 1, 0, 0, 0, 0, loc)
}

// MonthToken formats the month cursor the way the list endpoint expects.
func MonthToken(month time.Time, loc *time.Location) string {
	return month.In(loc).Format("2006-01")
}
