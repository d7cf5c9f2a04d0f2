package item

import (
	"testing"
	"time"

	"github.com/lostfound-tw/lostfound/internal/sheet"
)

var fullColumns = []string{"遺失物編號", "學期", "拾獲日期", "拾獲校區", "拾獲地點", "拾獲物品名稱", "物品詳細描述", "圖片公開連結"}

func fullRow(id string) []sheet.Cell {
	return []sheet.Cell{
		{Value: id},
		{Value: "113-1"},
		{Value: "Date(2024,5,10)", Formatted: "2024/6/10"},
		{Value: "進德校區"},
		{Value: "圖書館"},
		{Value: "雨傘"},
		{Value: "黑色摺疊傘"},
		{Value: "https://drive.google.com/open?id=abc"},
	}
}

func TestMapper_Map_FullRow(t *testing.T) {
	table := &sheet.Table{
		Columns: fullColumns,
		Rows:    [][]sheet.Cell{fullRow("A001")},
	}

	records := NewMapper(DefaultColumns(), time.UTC).Map(table)
	if len(records) != 1 {
		t.Fatalf("Map() returned %d records, want 1", len(records))
	}

	r := records[0]
	want := Record{
		ID:             "A001",
		Period:         "113-1",
		PickupDateText: "2024/6/10",
		Campus:         "進德校區",
		Location:       "圖書館",
		Name:           "雨傘",
		Description:    "黑色摺疊傘",
		ImageRef:       "https://drive.google.com/open?id=abc",
	}

	if r.ID != want.ID || r.Period != want.Period || r.PickupDateText != want.PickupDateText ||
		r.Campus != want.Campus || r.Location != want.Location || r.Name != want.Name ||
		r.Description != want.Description || r.ImageRef != want.ImageRef {
		t.Errorf("Map() = %+v, want %+v", r, want)
	}

	if r.PickupDate == nil {
		t.Fatal("PickupDate is nil")
	}
	if !r.PickupDate.Equal(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("PickupDate = %v, want 2024-06-10", r.PickupDate)
	}

	// no field fell back to a default
	if r.PickupDateText == NoDate || r.Name == NoName {
		t.Errorf("well-formed row should not be defaulted: %+v", r)
	}
}

func TestMapper_Map_Defaults(t *testing.T) {
	table := &sheet.Table{
		Columns: fullColumns,
		Rows: [][]sheet.Cell{
			{{Value: "A002"}, {}, {Value: "2024-06-10"}, {}, {}, {}, {}, {}},
		},
	}

	records := NewMapper(DefaultColumns(), time.UTC).Map(table)
	if len(records) != 1 {
		t.Fatalf("Map() returned %d records, want 1", len(records))
	}

	r := records[0]
	if r.PickupDateText != NoDate {
		t.Errorf("PickupDateText = %q, want %q", r.PickupDateText, NoDate)
	}
	if r.PickupDate != nil {
		t.Errorf("PickupDate = %v, want nil for malformed date", r.PickupDate)
	}
	if r.Name != NoName {
		t.Errorf("Name = %q, want %q", r.Name, NoName)
	}
	if r.Campus != "" || r.Location != "" || r.Description != "" || r.ImageRef != "" || r.Period != "" {
		t.Errorf("optional fields should be empty: %+v", r)
	}
}

func TestMapper_Map_DropsRowsWithoutID(t *testing.T) {
	table := &sheet.Table{
		Columns: fullColumns,
		Rows: [][]sheet.Cell{
			fullRow("A001"),
			fullRow(""),
			{{}, {}, {}, {}, {}, {}, {}, {}},
			fullRow("A004"),
		},
	}

	records := NewMapper(DefaultColumns(), time.UTC).Map(table)
	if len(records) != 2 {
		t.Fatalf("Map() returned %d records, want 2", len(records))
	}
	if records[0].ID != "A001" || records[1].ID != "A004" {
		t.Errorf("Map() order = [%s %s], want [A001 A004]", records[0].ID, records[1].ID)
	}
	if len(records) > table.Len() {
		t.Errorf("output longer than input")
	}
}

func TestMapper_Map_ColumnOrderAndAbsence(t *testing.T) {
	table := &sheet.Table{
		Columns: []string{"拾獲物品名稱", "其他欄位", "遺失物編號"},
		Rows: [][]sheet.Cell{
			{{Value: "手錶"}, {Value: "x"}, {Value: float64(1130001)}},
		},
	}

	records := NewMapper(DefaultColumns(), time.UTC).Map(table)
	if len(records) != 1 {
		t.Fatalf("Map() returned %d records, want 1", len(records))
	}
	r := records[0]
	if r.ID != "1130001" {
		t.Errorf("ID = %q, want 1130001", r.ID)
	}
	if r.Name != "手錶" {
		t.Errorf("Name = %q, want 手錶", r.Name)
	}
	if r.PickupDateText != NoDate || r.PickupDate != nil {
		t.Errorf("absent date column should default, got %q / %v", r.PickupDateText, r.PickupDate)
	}
}

func TestMapper_Map_MissingIDColumn(t *testing.T) {
	table := &sheet.Table{
		Columns: []string{"拾獲物品名稱"},
		Rows:    [][]sheet.Cell{{{Value: "雨傘"}}, {{Value: "手錶"}}},
	}

	records := NewMapper(DefaultColumns(), time.UTC).Map(table)
	if len(records) != 0 {
		t.Errorf("Map() returned %d records, want 0 without an id column", len(records))
	}
}

func TestMapper_Map_Empty(t *testing.T) {
	m := NewMapper(DefaultColumns(), nil)

	if got := m.Map(nil); len(got) != 0 {
		t.Errorf("Map(nil) = %v, want empty", got)
	}
	if got := m.Map(&sheet.Table{Columns: fullColumns}); got == nil || len(got) != 0 {
		t.Errorf("Map(empty) = %v, want empty non-nil slice", got)
	}
}

func TestMapper_Map_CustomColumns(t *testing.T) {
	cols := DefaultColumns()
	cols.ID = "編號"
	table := &sheet.Table{
		Columns: []string{"編號"},
		Rows:    [][]sheet.Cell{{{Value: "Z9"}}},
	}

	records := NewMapper(cols, time.UTC).Map(table)
	if len(records) != 1 || records[0].ID != "Z9" {
		t.Errorf("Map() = %+v, want one record Z9", records)
	}
}
