package main

import (
	"fmt"
	"time"

	"eventcal/src-client/calendar"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

func newWhenParser() *when.Parser {
	parser := when.New(nil)
	parser.Add(en.All...)
	parser.Add(common.All...)
	return parser
}

// resolveDay turns "2026-02-03", "tomorrow", "next friday" and the like into
// local midnight of that day. Empty means today.
func resolveDay(parser *when.Parser, text string, now time.Time, loc *time.Location) (time.Time, error) {
	if text == "" {
		return calendar.StartOfDay(now, loc), nil
	}
	if day, err := time.ParseInLocation(calendar.DateLayout, text, loc); err == nil {
		return day, nil
	}
	result, err := parser.Parse(text, now.In(loc))
	if err != nil {
		return time.Time{}, fmt.Errorf("can't parse date %q: %w", text, err)
	}
	if result == nil {
		return time.Time{}, fmt.Errorf("can't parse date %q", text)
	}
	return calendar.StartOfDay(result.Time, loc), nil
}
