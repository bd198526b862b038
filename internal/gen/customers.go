package gen

import (
	"time"

	"pkg.jsn.cam/minridegen/pkg/minride"
)

// CustomerGenerator generates customer rows: name, home district and a 2D
// position.
type CustomerGenerator struct {
	src *Source
}

func (g *CustomerGenerator) Init(src *Source, _ func() time.Time) {
	g.src = src
}

func (g *CustomerGenerator) FileName() string { return "customers.csv" }

func (g *CustomerGenerator) Header() string { return minride.CustomerHeader }

func (g *CustomerGenerator) Row(id int) []string {
	c := minride.Customer{
		ID:       id,
		Name:     Name(g.src),
		District: District(g.src),
		X:        Round1(g.src.FloatBetween(0, 10)),
		Y:        Round1(g.src.FloatBetween(0, 10)),
	}
	return c.Row()
}

func (g *CustomerGenerator) Description() string {
	return "Customers: name, district (10 fixed labels), position [0-10]"
}

func (g *CustomerGenerator) DefaultCount() int { return 100 }
