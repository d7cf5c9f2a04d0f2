package item

// Diff returns the records in current whose ID was not present in previous,
// in current's order. A nil previous snapshot treats every record as new.
func Diff(previous *Snapshot, current []Record) []Record {
	seen := make(map[string]bool)
	if previous != nil {
		for _, r := range previous.Records {
			seen[r.ID] = true
		}
	}

	added := make([]Record, 0)
	for _, r := range current {
		if !seen[r.ID] {
			added = append(added, r)
		}
	}
	return added
}
