package facet

import (
	"reflect"
	"testing"

	"github.com/lostfound-tw/lostfound/internal/item"
)

func TestSortPeriods(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{
			name: "descending by year then term",
			keys: []string{"112-1", "113-2", "112-2", "113-1"},
			want: []string{"113-2", "113-1", "112-2", "112-1"},
		},
		{
			name: "numeric not lexical",
			keys: []string{"99-1", "100-1", "113-9", "113-10"},
			want: []string{"113-10", "113-9", "100-1", "99-1"},
		},
		{
			name: "empty",
			keys: []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SortPeriods(tt.keys)
			if !reflect.DeepEqual(tt.keys, tt.want) {
				t.Errorf("SortPeriods() = %v, want %v", tt.keys, tt.want)
			}
		})
	}
}

func TestPeriods(t *testing.T) {
	records := []item.Record{
		{ID: "1", Period: "112-1"},
		{ID: "2", Period: "113-2"},
		{ID: "3", Period: ""},
		{ID: "4", Period: "112-2"},
		{ID: "5", Period: "113-2"},
		{ID: "6", Period: "113-1"},
	}

	got := Periods(records)
	want := []string{"113-2", "113-1", "112-2", "112-1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Periods() = %v, want %v", got, want)
	}

	if got := Periods(nil); len(got) != 0 {
		t.Errorf("Periods(nil) = %v, want empty", got)
	}
}

func TestPeriodLabel(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"113-1", "第 113 學年 第 1 學期"},
		{"112-2", "第 112 學年 第 2 學期"},
		{"summer", "summer"},
	}

	for _, tt := range tests {
		if got := PeriodLabel(tt.key); got != tt.want {
			t.Errorf("PeriodLabel(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestPeriodOptions(t *testing.T) {
	opts := PeriodOptions([]item.Record{{Period: "112-1"}, {Period: "113-1"}})

	want := []Option{
		{Value: All, Label: AllPeriodsLabel},
		{Value: "113-1", Label: "第 113 學年 第 1 學期"},
		{Value: "112-1", Label: "第 112 學年 第 1 學期"},
	}
	if !reflect.DeepEqual(opts, want) {
		t.Errorf("PeriodOptions() = %v, want %v", opts, want)
	}
}

func TestIndex(t *testing.T) {
	f := Index([]item.Record{{Period: "113-1"}}, DefaultCategories())

	if len(f.Periods) != 2 {
		t.Errorf("Periods = %v, want ALL + one key", f.Periods)
	}
	if len(f.Campuses) != 3 {
		t.Errorf("Campuses = %v, want 3", f.Campuses)
	}
	if got := f.Locations[All]; len(got) != 1 || got[0].Value != AllLocations {
		t.Errorf("Locations[ALL] = %v, want only %q", got, AllLocations)
	}
	if got := f.Locations["寶山校區"]; len(got) != 7 || got[6].Value != OtherLocation {
		t.Errorf("Locations[寶山校區] = %v, want 6 predefined + other", got)
	}
}
