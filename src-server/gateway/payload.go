package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"eventcal/src-server/utils"
)

// Payload is the untrusted body of a create or update request. Every field
// is resupplied on update; there is no partial update.
type Payload struct {
	Title   *string `json:"title"`
	StartAt *string `json:"start_at"`
	EndAt   *string `json:"end_at"`
	Memo    *string `json:"memo"`
}

// DecodePayload reads a JSON object from r. Anything that isn't a JSON
// object with the expected field types is a MalformedRequestError.
func DecodePayload(r io.Reader) (Payload, error) {
	var payload Payload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return Payload{}, &MalformedRequestError{Err: err}
	}
	return payload, nil
}

// validEvent is a payload that passed every check.
type validEvent struct {
	title   string
	startAt time.Time
	endAt   time.Time
	memo    string
}

// validate runs the checks in order: title, timestamps, range. The first
// failure wins.
func (p Payload) validate() (validEvent, error) {
	title := utils.CleanupString(deref(p.Title))
	if title == "" {
		return validEvent{}, &ValidationError{Msg: ErrMsgTitleRequired}
	}

	start, startErr := ParseInstant(deref(p.StartAt))
	end, endErr := ParseInstant(deref(p.EndAt))
	if startErr != nil || endErr != nil {
		return validEvent{}, &ValidationError{Msg: ErrMsgInvalidTimestamps}
	}

	if !end.After(start) {
		return validEvent{}, &ValidationError{Msg: ErrMsgEndBeforeStart}
	}

	return validEvent{
		title:   title,
		startAt: start,
		endAt:   end,
		memo:    deref(p.Memo),
	}, nil
}

// instantLayouts are the ISO-8601 forms accepted on input, seconds and
// fraction optional.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

// ParseInstant parses an ISO-8601 timestamp with an offset and normalizes it
// to UTC with millisecond precision.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	var err error
	for _, layout := range instantLayouts {
		var parsed time.Time
		if parsed, err = time.Parse(layout, s); err == nil {
			return parsed.UTC().Truncate(time.Millisecond), nil
		}
	}
	return time.Time{}, err
}

// FormatInstant renders t the way instants travel on the wire:
// UTC, millisecond precision.
func FormatInstant(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
