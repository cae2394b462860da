package calendar

import "time"

type ListItem struct {
	ID        int64
	Title     string
	TimeRange string
	Memo      string
}

// DayList returns the loaded events starting on the selected local date,
// ascending by start.
func DayList(s State) []ListItem {
	selectedKey := KeyOf(s.Selected, s.Loc)

	dayEvents := make([]Event, 0)
	for _, e := range s.Events {
		if KeyOf(e.StartAt, s.Loc) == selectedKey {
			dayEvents = append(dayEvents, e)
		}
	}
	sortByStart(dayEvents)

	items := make([]ListItem, 0, len(dayEvents))
	for _, e := range dayEvents {
		items = append(items, ListItem{
			ID:        e.ID,
			Title:     e.Title,
			TimeRange: FormatTimeRange(e, s.Loc),
			Memo:      e.Memo,
		})
	}
	return items
}

// FormatTimeRange renders "09:00 - 10:00" in local time.
func FormatTimeRange(e Event, loc *time.Location) string {
	return e.StartAt.In(loc).Format(TimeLayout) + " - " + e.EndAt.In(loc).Format(TimeLayout)
}
