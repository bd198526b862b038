package datagen

import "time"

// Default volumes and output location. The flags in cmd/minridegen default
// to these, so a bare invocation reproduces the standard demo dataset.
const (
	DefaultDrivers   = 100
	DefaultCustomers = 100
	DefaultRides     = 500
	DefaultOutputDir = "data"
)

// Config holds everything one generation run needs.
type Config struct {
	OutputDir string
	Drivers   int
	Customers int
	Rides     int

	// Seed for the randomness source. Zero means seed from the wall clock.
	Seed uint64

	// CatalogPath is the run catalog database. Empty disables run recording.
	CatalogPath string

	// Now supplies the reference clock for ride timestamps. Nil means
	// time.Now.
	Now func() time.Time

	// Progress receives generation milestones. Nil disables reporting.
	Progress Progress
}

// DefaultConfig returns a Config producing the standard demo dataset.
func DefaultConfig() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		Drivers:   DefaultDrivers,
		Customers: DefaultCustomers,
		Rides:     DefaultRides,
	}
}

// Progress receives generation milestones. Implementations must be cheap:
// RowWritten is called once per record.
type Progress interface {
	FileStarted(name string, rows int)
	RowWritten()
	FileDone(path string)
}

type nopProgress struct{}

func (nopProgress) FileStarted(string, int) {}
func (nopProgress) RowWritten()             {}
func (nopProgress) FileDone(string)         {}
