package item

import (
	"regexp"
	"strconv"
	"time"
)

var gvizDatePattern = regexp.MustCompile(`^Date\((\d+),(\d+),(\d+)\)$`)

// ParseDate parses a gviz date literal such as "Date(2024,5,10)" into a
// midnight time in loc. The month is zero-based. Returns nil for any value
// that is not a string of exactly that shape.
func ParseDate(raw any, loc *time.Location) *time.Time {
	s, ok := raw.(string)
	if !ok || s == "" {
		return nil
	}

	m := gvizDatePattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}

	year, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	month, err := strconv.Atoi(m[2])
	if err != nil {
		return nil
	}
	day, err := strconv.Atoi(m[3])
	if err != nil {
		return nil
	}

	if loc == nil {
		loc = time.Local
	}
	t := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, loc)
	return &t
}
