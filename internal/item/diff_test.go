package item

import (
	"testing"
	"time"
)

func TestDiff(t *testing.T) {
	previous := NewSnapshot([]Record{{ID: "A1"}, {ID: "A2"}}, time.Now())

	tests := []struct {
		name     string
		previous *Snapshot
		current  []Record
		wantIDs  []string
	}{
		{
			name:     "nil previous treats all as new",
			previous: nil,
			current:  []Record{{ID: "A1"}, {ID: "A3"}},
			wantIDs:  []string{"A1", "A3"},
		},
		{
			name:     "only unseen ids",
			previous: previous,
			current:  []Record{{ID: "A3"}, {ID: "A1"}, {ID: "A4"}},
			wantIDs:  []string{"A3", "A4"},
		},
		{
			name:     "nothing new",
			previous: previous,
			current:  []Record{{ID: "A2"}},
			wantIDs:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.previous, tt.current)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Diff() returned %d records, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("Diff()[%d].ID = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}
