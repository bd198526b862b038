package gen

import (
	"fmt"
	"time"

	"pkg.jsn.cam/minridegen/pkg/minride"
)

// Generator produces one kind of dataset record.
type Generator interface {
	// Init hands the generator the run's randomness source and reference
	// clock before any rows are produced.
	Init(src *Source, now func() time.Time)

	// FileName returns the CSV file this generator feeds.
	FileName() string

	// Header returns the literal CSV header line.
	Header() string

	// Row produces the CSV fields for the record with the given sequential ID.
	Row(id int) []string

	// Description returns a human-readable description of the record kind.
	Description() string

	// DefaultCount returns the default number of rows to generate.
	DefaultCount() int
}

// Counts carries the configured row counts. The ride generator needs the
// driver and customer counts to draw its reference IDs.
type Counts struct {
	Drivers   int
	Customers int
	Rides     int
}

// Of returns the configured row count for a generator name.
func (c Counts) Of(name string) int {
	switch name {
	case "drivers":
		return c.Drivers
	case "customers":
		return c.Customers
	case "rides":
		return c.Rides
	}
	return 0
}

// Registry maps generator names to generator factory functions.
// Factories take Counts so the ride generator can be parameterized with the
// ID ranges it references.
var Registry = map[string]func(c Counts) Generator{
	"drivers":   func(Counts) Generator { return &DriverGenerator{} },
	"customers": func(Counts) Generator { return &CustomerGenerator{} },
	"rides": func(c Counts) Generator {
		return &RideGenerator{DriverCount: c.Drivers, CustomerCount: c.Customers}
	},
}

// Order fixes the emission sequence: drivers, then customers, then rides.
var Order = []string{"drivers", "customers", "rides"}

// Get returns a generator by name.
func Get(name string, c Counts) (Generator, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", minride.ErrUnknownGenerator, name)
	}
	return factory(c), nil
}
