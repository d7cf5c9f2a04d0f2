package storage

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lostfound-tw/lostfound/internal/item"
)

// Storage handles persistence of record snapshots
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// Dir returns the resolved data directory.
func (s *Storage) Dir() string {
	return s.dataDir
}

// snapshotPath returns the path to the snapshot file of a sheet tab
func (s *Storage) snapshotPath(sheetID, sheetName string) string {
	sum := sha1.Sum([]byte(sheetID + "|" + sheetName))
	return filepath.Join(s.dataDir, fmt.Sprintf("snapshot_%x.json", sum[:8]))
}

// LoadSnapshot loads a snapshot from disk. A missing file yields nil and no error.
func (s *Storage) LoadSnapshot(sheetID, sheetName string) (*item.Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath(sheetID, sheetName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot item.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if snapshot.Records == nil {
		snapshot.Records = []item.Record{}
	}

	return &snapshot, nil
}

// SaveSnapshot writes a snapshot to disk, replacing any previous one atomically.
func (s *Storage) SaveSnapshot(snapshot *item.Snapshot, sheetID, sheetName string) error {
	path := s.snapshotPath(sheetID, sheetName)

	if snapshot.Source == "" {
		snapshot.Source = sheetID + "/" + sheetName
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}
