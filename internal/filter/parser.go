package filter

import (
	"strings"
	"time"
)

// boundLayouts are the date formats accepted for range bounds.
var boundLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
}

// ParseBound parses a date-range bound typed by a user into a midnight time
// in loc. Empty or unparseable input yields nil, meaning "no bound".
func ParseBound(input string, loc *time.Location) *time.Time {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range boundLayouts {
		t, err := time.ParseInLocation(layout, input, loc)
		if err == nil {
			return &t
		}
	}
	return nil
}
