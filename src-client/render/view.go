// Package render draws a calendar.State as HTML or plain text.
package render

import (
	"time"

	"eventcal/src-client/calendar"
)

var Weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// View is everything a renderer needs, derived once from a State.
type View struct {
	MonthLabel    string
	SelectedLabel string
	MonthToken    string
	PrevToken     string
	NextToken     string
	Weekdays      [7]string
	Grid          calendar.Grid
	DayList       []calendar.ListItem
	Dialog        calendar.Dialog
}

func NewView(s calendar.State) View {
	return View{
		MonthLabel:    FormatMonthLabel(s.Current, s.Loc),
		SelectedLabel: FormatSelectedLabel(s.Selected, s.Loc),
		MonthToken:    calendar.MonthToken(s.Current, s.Loc),
		PrevToken:     calendar.MonthToken(calendar.AddMonths(s.Current, -1, s.Loc), s.Loc),
		NextToken:     calendar.MonthToken(calendar.AddMonths(s.Current, 1, s.Loc), s.Loc),
		Weekdays:      Weekdays,
		Grid:          calendar.BuildGrid(s),
		DayList:       calendar.DayList(s),
		Dialog:        s.Dialog,
	}
}

// FormatMonthLabel renders "February 2026".
func FormatMonthLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("January 2006")
}

// FormatSelectedLabel renders "Mon, Feb 2 2026".
func FormatSelectedLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Mon, Jan 2 2006")
}
