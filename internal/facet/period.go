package facet

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/lostfound-tw/lostfound/internal/item"
)

// AllPeriodsLabel labels the option that disables the period filter.
const AllPeriodsLabel = "全部學年學期"

var periodLocale = language.MustParse("zh-Hant-TW")

// SortPeriods sorts keys newest first, comparing embedded numbers by value
// so that "113-2" precedes "112-2" and "113-10" precedes "113-9".
func SortPeriods(keys []string) {
	// collators keep internal buffers and are not safe to share
	c := collate.New(periodLocale, collate.Numeric)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.CompareString(keys[i], keys[j]) > 0
	})
}

// Periods returns the distinct non-empty period keys of records, newest first.
func Periods(records []item.Record) []string {
	seen := make(map[string]bool)
	keys := make([]string, 0)
	for _, r := range records {
		if r.Period == "" || seen[r.Period] {
			continue
		}
		seen[r.Period] = true
		keys = append(keys, r.Period)
	}
	SortPeriods(keys)
	return keys
}

// PeriodLabel renders a "year-term" key such as "113-1" as 第 113 學年 第 1 學期.
// Keys without a dash are returned unchanged.
func PeriodLabel(key string) string {
	year, term, ok := strings.Cut(key, "-")
	if !ok {
		return key
	}
	return fmt.Sprintf("第 %s 學年 第 %s 學期", year, term)
}

// PeriodOptions returns the ALL option followed by one option per period.
func PeriodOptions(records []item.Record) []Option {
	keys := Periods(records)
	opts := make([]Option, 0, len(keys)+1)
	opts = append(opts, Option{Value: All, Label: AllPeriodsLabel})
	for _, k := range keys {
		opts = append(opts, Option{Value: k, Label: PeriodLabel(k)})
	}
	return opts
}

// Facets bundles every option list a filter form needs.
type Facets struct {
	Periods   []Option            `json:"periods"`
	Campuses  []Option            `json:"campuses"`
	Locations map[string][]Option `json:"locations"`
}

// Index derives the facets of records under categories.
func Index(records []item.Record, categories *Categories) *Facets {
	f := &Facets{
		Periods:   PeriodOptions(records),
		Campuses:  categories.CampusOptions(),
		Locations: make(map[string][]Option),
	}
	for _, name := range categories.Campuses() {
		f.Locations[name] = categories.LocationsFor(name)
	}
	return f
}
