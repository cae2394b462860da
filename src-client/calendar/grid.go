package calendar

import (
	"sort"
	"strconv"
	"time"
)

const (
	// GridCells is six full weeks, whatever the month length.
	GridCells = 42
	// MaxChips is the number of titles a cell shows before collapsing.
	MaxChips = 3
)

type Chip struct {
	ID    int64
	Title string
}

type Cell struct {
	Date     time.Time
	Key      DateKey
	Day      int
	Muted    bool // outside the displayed month
	Selected bool
	Chips    []Chip
	Overflow int // events beyond MaxChips
}

// OverflowLabel is "+N" or "" when every event fits.
func (c Cell) OverflowLabel() string {
	if c.Overflow <= 0 {
		return ""
	}
	return "+" + strconv.Itoa(c.Overflow)
}

type Grid struct {
	Month time.Time
	Cells [GridCells]Cell
}

// GroupByDate buckets events by local start date, each bucket ascending by
// start. The input slice is left untouched.
func GroupByDate(events []Event, loc *time.Location) map[DateKey][]Event {
	byDate := make(map[DateKey][]Event)
	for _, e := range events {
		key := KeyOf(e.StartAt, loc)
		byDate[key] = append(byDate[key], e)
	}
	for _, bucket := range byDate {
		sortByStart(bucket)
	}
	return byDate
}

func sortByStart(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartAt.Before(events[j].StartAt)
	})
}

// BuildGrid lays out the 42 days starting with the Sunday on or before the
// 1st of the current month.
func BuildGrid(s State) Grid {
	loc := s.Loc
	first := StartOfMonth(s.Current, loc)
	offset := int(first.Weekday())
	selectedKey := KeyOf(s.Selected, loc)
	byDate := GroupByDate(s.Events, loc)

	grid := Grid{Month: first}
	for i := range grid.Cells {
		date := time.Date(first.Year(), first.Month(), 1-offset+i, 0, 0, 0, 0, loc)
		key := KeyOf(date, loc)
		dayEvents := byDate[key]

		cell := Cell{
			Date:     date,
			Key:      key,
			Day:      date.Day(),
			Muted:    date.Month() != first.Month(),
			Selected: key == selectedKey,
		}
		for j, e := range dayEvents {
			if j == MaxChips {
				cell.Overflow = len(dayEvents) - MaxChips
				break
			}
			cell.Chips = append(cell.Chips, Chip{ID: e.ID, Title: e.Title})
		}
		grid.Cells[i] = cell
	}
	return grid
}
