package minride

import "strconv"

// RideStatus is the final outcome of a generated ride.
type RideStatus string

const (
	RideStatusConfirmed RideStatus = "CONFIRMED"
	RideStatusCancelled RideStatus = "CANCELLED"
)

// CSV headers for the three dataset files, in column order.
const (
	DriverHeader   = "ID,Name,Rating,X,Y,TotalRides"
	CustomerHeader = "ID,Name,District,X,Y"
	RideHeader     = "RideId,CustomerId,DriverId,Distance,Fare,Timestamp,Status"
)

// Driver is one row of drivers.csv. Ratings and coordinates carry exactly
// one fractional digit.
type Driver struct {
	ID         int
	Name       string
	Rating     float64
	X          float64
	Y          float64
	TotalRides int
}

// Row returns the driver's CSV fields in header order.
func (d Driver) Row() []string {
	return []string{
		strconv.Itoa(d.ID),
		d.Name,
		formatDecimal(d.Rating),
		formatDecimal(d.X),
		formatDecimal(d.Y),
		strconv.Itoa(d.TotalRides),
	}
}

// Customer is one row of customers.csv.
type Customer struct {
	ID       int
	Name     string
	District string
	X        float64
	Y        float64
}

// Row returns the customer's CSV fields in header order.
func (c Customer) Row() []string {
	return []string{
		strconv.Itoa(c.ID),
		c.Name,
		c.District,
		formatDecimal(c.X),
		formatDecimal(c.Y),
	}
}

// Ride is one row of rides.csv. CustomerID and DriverID are range-checked
// references only; nothing guarantees the referenced rows exist.
type Ride struct {
	ID         int
	CustomerID int
	DriverID   int
	Distance   float64
	Fare       int
	Timestamp  string
	Status     RideStatus
}

// Row returns the ride's CSV fields in header order.
func (r Ride) Row() []string {
	return []string{
		strconv.Itoa(r.ID),
		strconv.Itoa(r.CustomerID),
		strconv.Itoa(r.DriverID),
		formatDecimal(r.Distance),
		strconv.Itoa(r.Fare),
		r.Timestamp,
		string(r.Status),
	}
}

// formatDecimal renders a value with exactly one fractional digit, the fixed
// precision used across all three files.
func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
