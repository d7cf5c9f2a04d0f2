package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lostfound-tw/lostfound/internal/item"
)

func TestSaveAndLoadSnapshot(t *testing.T) {
	tmpDir := t.TempDir()

	storage, err := New(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	date := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	snap := item.NewSnapshot([]item.Record{
		{ID: "A001", Name: "雨傘", PickupDate: &date, PickupDateText: "2024/6/10"},
		{ID: "A002", Name: "手錶", PickupDateText: item.NoDate},
	}, time.Date(2024, time.June, 11, 8, 0, 0, 0, time.UTC))

	if err := storage.SaveSnapshot(snap, "sheet", "Public_data"); err != nil {
		t.Fatalf("SaveSnapshot() error: %v", err)
	}

	loaded, err := storage.LoadSnapshot("sheet", "Public_data")
	if err != nil {
		t.Fatalf("LoadSnapshot() error: %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadSnapshot() returned nil")
	}

	if len(loaded.Records) != 2 {
		t.Fatalf("loaded %d records, want 2", len(loaded.Records))
	}
	if loaded.Records[0].PickupDate == nil || !loaded.Records[0].PickupDate.Equal(date) {
		t.Errorf("PickupDate = %v, want %v", loaded.Records[0].PickupDate, date)
	}
	if loaded.Records[1].PickupDate != nil {
		t.Errorf("PickupDate = %v, want nil", loaded.Records[1].PickupDate)
	}
	if loaded.Source != "sheet/Public_data" {
		t.Errorf("Source = %q, want sheet/Public_data", loaded.Source)
	}
	if !loaded.FetchedAt.Equal(snap.FetchedAt) {
		t.Errorf("FetchedAt = %v, want %v", loaded.FetchedAt, snap.FetchedAt)
	}
}

func TestLoadSnapshot_Missing(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	snap, err := storage.LoadSnapshot("sheet", "other")
	if err != nil {
		t.Fatalf("LoadSnapshot() error: %v", err)
	}
	if snap != nil {
		t.Errorf("LoadSnapshot() = %+v, want nil for missing file", snap)
	}
}

func TestLoadSnapshot_Corrupt(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	path := storage.snapshotPath("sheet", "tab")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := storage.LoadSnapshot("sheet", "tab"); err == nil {
		t.Error("LoadSnapshot() expected error for corrupt file")
	}
}

func TestSnapshotPath_PerSheet(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	a := storage.snapshotPath("sheet", "A")
	b := storage.snapshotPath("sheet", "B")
	if a == b {
		t.Error("different tabs should not share a snapshot file")
	}
	if filepath.Dir(a) != storage.Dir() {
		t.Errorf("snapshot path %q outside data dir %q", a, storage.Dir())
	}
}

func TestNew_CreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if _, err := New(dir); err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("data dir not created: %v", err)
	}
}
