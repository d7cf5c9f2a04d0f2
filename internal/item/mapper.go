package item

import (
	"time"

	"github.com/lostfound-tw/lostfound/internal/sheet"
)

// Mapper turns sheet tables into records
type Mapper struct {
	columns  Columns
	location *time.Location
}

// NewMapper creates a Mapper reading the given columns. Pickup dates are
// placed in loc; a nil loc means time.Local.
func NewMapper(columns Columns, loc *time.Location) *Mapper {
	if loc == nil {
		loc = time.Local
	}
	return &Mapper{
		columns:  columns,
		location: loc,
	}
}

// columnIndex holds the resolved position of each field, -1 when absent.
type columnIndex struct {
	id, period, date, campus, location, name, description, image int
}

func (m *Mapper) resolve(t *sheet.Table) columnIndex {
	idx := t.Index()
	lookup := func(label string) int {
		if i, ok := idx[label]; ok {
			return i
		}
		return -1
	}
	return columnIndex{
		id:          lookup(m.columns.ID),
		period:      lookup(m.columns.Period),
		date:        lookup(m.columns.PickupDate),
		campus:      lookup(m.columns.Campus),
		location:    lookup(m.columns.Location),
		name:        lookup(m.columns.Name),
		description: lookup(m.columns.Description),
		image:       lookup(m.columns.Image),
	}
}

// Map converts every row with a non-empty item number into a Record,
// preserving row order. Missing columns and blank cells fall back to defaults.
func (m *Mapper) Map(t *sheet.Table) []Record {
	if t == nil {
		return []Record{}
	}
	records := make([]Record, 0, t.Len())

	ci := m.resolve(t)
	for row := 0; row < t.Len(); row++ {
		text := func(col int) string {
			return t.Cell(row, col).Text()
		}

		rec := Record{
			ID:             text(ci.id),
			Period:         text(ci.period),
			PickupDateText: orDefault(t.Cell(row, ci.date).Formatted, NoDate),
			PickupDate:     ParseDate(t.Cell(row, ci.date).Value, m.location),
			Campus:         text(ci.campus),
			Location:       text(ci.location),
			Name:           orDefault(text(ci.name), NoName),
			Description:    text(ci.description),
			ImageRef:       text(ci.image),
		}
		if rec.ID == "" {
			continue
		}
		records = append(records, rec)
	}

	return records
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
