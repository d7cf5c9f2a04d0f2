// Package filter provides record filtering for the lost-and-found listing.
//
// A Criteria combines up to five predicates that must all hold:
//   - Pickup date range (inclusive, day granularity; undated items never match a bound)
//   - Academic period (exact match)
//   - Campus (exact match), with location narrowing inside the campus
//   - Keyword (case-insensitive substring of name or description)
//
// The "ALL" sentinels from package facet, and empty strings, disable a predicate,
// so the zero Criteria matches every record.
//
// Example usage:
//
//	engine := filter.NewEngine(facet.DefaultCategories())
//	c := filter.NewCriteria()
//	c.Campus = "進德校區"
//	c.Location = facet.OtherLocation
//	c.StartDate = filter.ParseBound("2024-01-01", time.Local)
//
//	visible := engine.Evaluate(records, c)
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/lostfound-tw/lostfound/internal/facet"
	"github.com/lostfound-tw/lostfound/internal/item"
)

// Criteria represents the current filter selection
type Criteria struct {
	Period    string     `json:"period,omitempty"`
	Campus    string     `json:"campus,omitempty"`
	Location  string     `json:"location,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Keyword   string     `json:"keyword,omitempty"`
}

// NewCriteria creates criteria with every predicate disabled, using the same
// sentinels a filter form starts with.
func NewCriteria() Criteria {
	return Criteria{
		Period:   facet.All,
		Campus:   facet.All,
		Location: facet.AllLocations,
	}
}

func isAll(v string) bool {
	return v == "" || v == facet.All
}

func (c Criteria) keyword() string {
	return strings.ToLower(strings.TrimSpace(c.Keyword))
}

// IsEmpty checks if the criteria has any active predicate.
func (c Criteria) IsEmpty() bool {
	return c.StartDate == nil &&
		c.EndDate == nil &&
		isAll(c.Period) &&
		isAll(c.Campus) &&
		c.keyword() == ""
}

// String returns a human-readable description of the active criteria.
func (c Criteria) String() string {
	if c.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if c.StartDate != nil {
		parts = append(parts, fmt.Sprintf("From: %s", c.StartDate.Format("2006-01-02")))
	}
	if c.EndDate != nil {
		parts = append(parts, fmt.Sprintf("To: %s", c.EndDate.Format("2006-01-02")))
	}
	if !isAll(c.Period) {
		parts = append(parts, fmt.Sprintf("Period: %s", c.Period))
	}
	if !isAll(c.Campus) {
		loc := c.Location
		switch loc {
		case "", facet.AllLocations:
			loc = facet.AllLocations
		case facet.OtherLocation:
			loc = facet.OtherLabel
		}
		parts = append(parts, fmt.Sprintf("Campus: %s / %s", c.Campus, loc))
	}
	if kw := strings.TrimSpace(c.Keyword); kw != "" {
		parts = append(parts, fmt.Sprintf("Keyword: %s", kw))
	}

	return strings.Join(parts, " | ")
}

// Clone creates a deep copy of the criteria.
func (c Criteria) Clone() Criteria {
	clone := c
	if c.StartDate != nil {
		sd := *c.StartDate
		clone.StartDate = &sd
	}
	if c.EndDate != nil {
		ed := *c.EndDate
		clone.EndDate = &ed
	}
	return clone
}

// Engine evaluates criteria against record collections. It holds only the
// read-only category metadata and is safe for concurrent use.
type Engine struct {
	categories *facet.Categories
}

// NewEngine creates an Engine that resolves the "other" location against
// categories. A nil categories uses facet.DefaultCategories.
func NewEngine(categories *facet.Categories) *Engine {
	if categories == nil {
		categories = facet.DefaultCategories()
	}
	return &Engine{categories: categories}
}

// Matches checks if a record satisfies every active predicate of c.
func (e *Engine) Matches(r item.Record, c Criteria) bool {
	if c.StartDate != nil || c.EndDate != nil {
		if r.PickupDate == nil {
			return false
		}
		if c.StartDate != nil && startOfDay(*r.PickupDate).Before(startOfDay(*c.StartDate)) {
			return false
		}
		if c.EndDate != nil && r.PickupDate.After(endOfDay(*c.EndDate)) {
			return false
		}
	}

	if !isAll(c.Period) && r.Period != c.Period {
		return false
	}

	if !isAll(c.Campus) {
		if r.Campus != c.Campus {
			return false
		}
		switch c.Location {
		case "", facet.AllLocations:
		case facet.OtherLocation:
			if e.categories.IsPredefined(c.Campus, r.Location) {
				return false
			}
		default:
			if r.Location != c.Location {
				return false
			}
		}
	}

	if kw := c.keyword(); kw != "" {
		if !strings.Contains(strings.ToLower(r.Name), kw) &&
			!strings.Contains(strings.ToLower(r.Description), kw) {
			return false
		}
	}

	return true
}

// Evaluate returns the records matching c, in input order. The input slice is
// never modified.
func (e *Engine) Evaluate(records []item.Record, c Criteria) []item.Record {
	filtered := make([]item.Record, 0, len(records))
	for _, r := range records {
		if e.Matches(r, c) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
