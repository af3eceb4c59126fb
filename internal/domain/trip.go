package domain

import "time"

// Trip is a departing combination, an optional returning combination and the
// number of bags the passenger travels with. A nil Returning leg means the
// trip is one-way; there is no sentinel "empty combination" value.
type Trip struct {
	// Departing is the outbound combination
	Departing Combination `json:"departing"`

	// Returning is the inbound combination, nil for one-way trips
	Returning *Combination `json:"returning,omitempty"`

	// Bags is the number of bags the trip is priced for
	Bags int `json:"bags"`
}

// RoundTrip reports whether the trip has a returning leg.
func (t Trip) RoundTrip() bool {
	return t.Returning != nil
}

// Origin is the departure airport of the trip.
func (t Trip) Origin() string {
	return t.Departing.Origin()
}

// Destination is the final arrival airport of the trip. For a round trip this
// is the returning combination's destination, which by construction equals
// the trip's origin.
func (t Trip) Destination() string {
	if t.Returning != nil {
		return t.Returning.Destination()
	}
	return t.Departing.Destination()
}

// TravelTime is the combined travel time of both legs, layovers included.
// Ground time between the outbound arrival and the return departure does
// not count.
func (t Trip) TravelTime() time.Duration {
	total := t.Departing.TravelTime()
	if t.Returning != nil {
		total += t.Returning.TravelTime()
	}
	return total
}

// Legs returns every flight of the trip in travel order, departing leg first.
// A one-way trip contributes only its departing flights.
func (t Trip) Legs() []Flight {
	legs := t.Departing.Legs()
	if t.Returning != nil {
		legs = append(legs, t.Returning.Legs()...)
	}
	return legs
}

// TotalPrice is the summed price of every leg for the trip's bag count.
func (t Trip) TotalPrice() float64 {
	total := t.Departing.TotalPrice(t.Bags)
	if t.Returning != nil {
		total += t.Returning.TotalPrice(t.Bags)
	}
	return total
}

// BagAllowance is the most restrictive bag allowance across all legs of
// both combinations.
func (t Trip) BagAllowance() int {
	allowance := t.Departing.BagAllowance()
	if t.Returning != nil {
		if ret := t.Returning.BagAllowance(); ret < allowance {
			allowance = ret
		}
	}
	return allowance
}
