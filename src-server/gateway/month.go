package gateway

import (
	"strconv"
	"strings"
	"time"
)

// Month identifies a calendar month independent of any zone.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth accepts "YYYY-MM" (the month may have one digit). Year must be
// in 1..9999 and month in 1..12.
func ParseMonth(token string) (Month, error) {
	invalid := &ValidationError{Msg: ErrMsgMonthRequired}

	yearStr, monthStr, ok := strings.Cut(strings.TrimSpace(token), "-")
	if !ok || yearStr == "" || monthStr == "" || len(monthStr) > 2 {
		return Month{}, invalid
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 || year > 9999 || yearStr[0] == '+' {
		return Month{}, invalid
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 || monthStr[0] == '+' {
		return Month{}, invalid
	}
	return Month{Year: year, Month: time.Month(month)}, nil
}

func (m Month) String() string {
	return strconv.Itoa(m.Year) + "-" + pad2(int(m.Month))
}

// Range returns the half-open instant range covering the month in loc's
// wall clock, converted to UTC. Boundaries come from calendar arithmetic so
// month lengths and DST shifts are honoured.
func (m Month) Range(loc *time.Location) (start, end time.Time) {
	start = time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
	end = time.Date(m.Year, m.Month+1, 1, 0, 0, 0, 0, loc)
	return start.UTC(), end.UTC()
}

// MonthOf returns the month containing t in loc.
func MonthOf(t time.Time, loc *time.Location) Month {
	local := t.In(loc)
	return Month{Year: local.Year(), Month: local.Month()}
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
