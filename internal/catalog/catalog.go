// Package catalog records completed generation runs so a dataset on disk can
// be traced back to the seed and counts that produced it. The dataset itself
// only ever lives in the CSV files; the catalog holds run metadata.
package catalog

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"pkg.jsn.cam/minridegen/pkg/minride"
	"pkg.jsn.cam/minridegen/pkg/storage"
)

var runsBucket = []byte("runs")

// Run is the recorded metadata of one generation run.
type Run struct {
	ID        string    `json:"id"`
	Seed      uint64    `json:"seed"`
	StartedAt time.Time `json:"started_at"`
	Drivers   int       `json:"drivers"`
	Customers int       `json:"customers"`
	Rides     int       `json:"rides"`
	Files     []File    `json:"files"`
}

// File is one emitted CSV file with its row count (header excluded).
type File struct {
	Path string `json:"path"`
	Rows int    `json:"rows"`
}

// Catalog persists runs in a storage backend.
type Catalog struct {
	store *storage.JSONStore
}

// Open opens a bbolt-backed catalog at dbPath, creating it if needed.
func Open(dbPath string) (*Catalog, error) {
	backend, err := storage.NewBboltBackend(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return New(backend)
}

// New wraps an existing backend as a catalog.
func New(backend storage.Backend) (*Catalog, error) {
	if err := backend.CreateBucket(runsBucket); err != nil {
		backend.Close()
		return nil, fmt.Errorf("failed to create runs bucket: %w", err)
	}
	return &Catalog{store: storage.NewJSONStore(backend)}, nil
}

// Record stores a run, assigning it a fresh ID if it has none, and returns
// the run ID.
func (c *Catalog) Record(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if err := c.store.PutJSON(runsBucket, []byte(run.ID), run); err != nil {
		return "", fmt.Errorf("failed to record run %s: %w", run.ID, err)
	}
	return run.ID, nil
}

// Get retrieves a recorded run by ID.
func (c *Catalog) Get(id string) (Run, error) {
	var run Run
	found, err := c.store.GetJSON(runsBucket, []byte(id), &run)
	if err != nil {
		return Run{}, err
	}
	if !found {
		return Run{}, fmt.Errorf("%w: %s", minride.ErrRunNotFound, id)
	}
	return run, nil
}

// List returns all recorded runs in unspecified order.
func (c *Catalog) List() ([]Run, error) {
	var runs []Run
	err := c.store.ForEach(runsBucket, func(_, v []byte) error {
		var run Run
		if err := json.Unmarshal(v, &run); err != nil {
			return fmt.Errorf("failed to decode run: %w", err)
		}
		runs = append(runs, run)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

// Close closes the underlying backend.
func (c *Catalog) Close() error {
	return c.store.Close()
}
