// Package domain contains the core business entities and rules for the trip search system.
// Every entity is an immutable value constructed once from validated input; nothing in this
// package performs I/O or re-validates what the loading layer already guaranteed.
package domain

import "time"

// Flight represents a single validated flight record from the catalog.
// Invariants guaranteed by the loading layer: origin differs from destination,
// arrival is strictly after departure, prices and bag allowance are non-negative.
type Flight struct {
	// ID is a unique identifier for this flight record (assigned at load time)
	ID string `json:"id"`

	// FlightNumber is the airline's flight number (e.g., "PV404")
	FlightNumber string `json:"flightNumber"`

	// Origin is the IATA code of the departure airport (e.g., "BTW")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "REJ")
	Destination string `json:"destination"`

	// Departure is the scheduled departure time
	Departure time.Time `json:"departure"`

	// Arrival is the scheduled arrival time
	Arrival time.Time `json:"arrival"`

	// BasePrice is the ticket price without baggage
	BasePrice float64 `json:"basePrice"`

	// BagPrice is the price per checked bag
	BagPrice float64 `json:"bagPrice"`

	// BagsAllowed is the maximum number of checked bags for this flight
	BagsAllowed int `json:"bagsAllowed"`
}

// TotalPrice returns the price of the flight for the given number of bags.
func (f Flight) TotalPrice(bags int) float64 {
	return f.BasePrice + float64(bags)*f.BagPrice
}

// Duration returns the in-air time of the flight.
func (f Flight) Duration() time.Duration {
	return f.Arrival.Sub(f.Departure)
}

// DepartsOn reports whether the flight departs on the given calendar date.
// Only the year, month and day of date are considered.
func (f Flight) DepartsOn(date time.Time) bool {
	y1, m1, d1 := f.Departure.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
