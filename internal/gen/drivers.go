package gen

import (
	"time"

	"pkg.jsn.cam/minridegen/pkg/minride"
)

// DriverGenerator generates driver rows: name, rating, 2D position and a
// completed-ride count.
type DriverGenerator struct {
	src *Source
}

func (g *DriverGenerator) Init(src *Source, _ func() time.Time) {
	g.src = src
}

func (g *DriverGenerator) FileName() string { return "drivers.csv" }

func (g *DriverGenerator) Header() string { return minride.DriverHeader }

func (g *DriverGenerator) Row(id int) []string {
	d := minride.Driver{
		ID:         id,
		Name:       Name(g.src),
		Rating:     Round1(g.src.FloatBetween(3.5, 5.0)),
		X:          Round1(g.src.FloatBetween(0, 10)),
		Y:          Round1(g.src.FloatBetween(0, 10)),
		TotalRides: g.src.IntBetween(10, 80),
	}
	return d.Row()
}

func (g *DriverGenerator) Description() string {
	return "Drivers: name, rating [3.5-5.0], position [0-10], total rides [10-80]"
}

func (g *DriverGenerator) DefaultCount() int { return 100 }
