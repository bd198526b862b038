package gen

import (
	"math"
	"time"

	"pkg.jsn.cam/minridegen/pkg/minride"
)

// Fare per kilometer, in the demo's currency units.
const farePerKm = 12000

// RideGenerator generates ride rows referencing driver and customer IDs by
// range only. References are not validated against the other files and may
// repeat; the downstream demo tolerates loose joins.
type RideGenerator struct {
	DriverCount   int
	CustomerCount int

	src *Source
	now func() time.Time
}

func (g *RideGenerator) Init(src *Source, now func() time.Time) {
	g.src = src
	g.now = now
}

func (g *RideGenerator) FileName() string { return "rides.csv" }

func (g *RideGenerator) Header() string { return minride.RideHeader }

func (g *RideGenerator) Row(id int) []string {
	distance := Round1(g.src.FloatBetween(2, 12))

	// 8 of 10 draws confirm the ride.
	status := minride.RideStatusConfirmed
	if g.src.IntBetween(1, 10) > 8 {
		status = minride.RideStatusCancelled
	}

	r := minride.Ride{
		ID:         id,
		CustomerID: g.src.IntBetween(1, g.CustomerCount),
		DriverID:   g.src.IntBetween(1, g.DriverCount),
		Distance:   distance,
		Fare:       int(math.Round(distance * farePerKm)),
		Timestamp:  Timestamp(g.now(), g.src.IntBetween(1, 30), g.src),
		Status:     status,
	}
	return r.Row()
}

func (g *RideGenerator) Description() string {
	return "Rides: customer/driver references, distance [2-12] km, fare, past timestamp, status"
}

func (g *RideGenerator) DefaultCount() int { return 500 }
