package domain

import (
	"encoding/json"
	"time"
)

// Combination is a non-empty, ordered, connected sequence of flights between
// two airports. For every adjacent pair of legs the earlier leg's destination
// equals the later leg's origin, and no airport is visited twice.
//
// A Combination is never mutated after construction: Extend returns a fresh
// value with its own leg slice and visited-airport set, so concurrent branches
// of a search never alias each other's state.
type Combination struct {
	legs    []Flight
	visited map[string]struct{}
}

// SingleLeg returns a combination consisting of exactly one flight.
// This is the only way a search seeds its stack, which makes the
// non-empty invariant structural rather than checked.
func SingleLeg(f Flight) Combination {
	return Combination{
		legs: []Flight{f},
		visited: map[string]struct{}{
			f.Origin:      {},
			f.Destination: {},
		},
	}
}

// NewCombination builds a combination from an explicit leg sequence.
// It returns ErrEmptyCombination for a zero-length sequence; connectivity
// of the legs is the caller's responsibility.
func NewCombination(legs ...Flight) (Combination, error) {
	if len(legs) == 0 {
		return Combination{}, ErrEmptyCombination
	}
	c := SingleLeg(legs[0])
	for _, f := range legs[1:] {
		c = c.Extend(f)
	}
	return c, nil
}

// Extend returns a new combination with f appended as the last leg.
// The receiver is left untouched.
func (c Combination) Extend(f Flight) Combination {
	legs := make([]Flight, len(c.legs)+1)
	copy(legs, c.legs)
	legs[len(c.legs)] = f

	visited := make(map[string]struct{}, len(c.visited)+1)
	for airport := range c.visited {
		visited[airport] = struct{}{}
	}
	visited[f.Origin] = struct{}{}
	visited[f.Destination] = struct{}{}

	return Combination{legs: legs, visited: visited}
}

// First returns the first leg of the combination.
func (c Combination) First() Flight {
	return c.legs[0]
}

// Last returns the last leg of the combination.
func (c Combination) Last() Flight {
	return c.legs[len(c.legs)-1]
}

// Origin is the departure airport of the first leg.
func (c Combination) Origin() string {
	return c.First().Origin
}

// Destination is the arrival airport of the last leg.
func (c Combination) Destination() string {
	return c.Last().Destination
}

// Len returns the number of legs.
func (c Combination) Len() int {
	return len(c.legs)
}

// Connections returns the number of connections (legs minus one).
func (c Combination) Connections() int {
	return len(c.legs) - 1
}

// HasVisited reports whether the combination already touches the airport,
// either as an endpoint or an intermediate stop.
func (c Combination) HasVisited(airport string) bool {
	_, ok := c.visited[airport]
	return ok
}

// Legs returns a copy of the leg sequence in travel order.
func (c Combination) Legs() []Flight {
	legs := make([]Flight, len(c.legs))
	copy(legs, c.legs)
	return legs
}

// TravelTime is the total duration from first departure to last arrival,
// layovers included.
func (c Combination) TravelTime() time.Duration {
	return c.Last().Arrival.Sub(c.First().Departure)
}

// TotalPrice returns the summed price of all legs for the given bag count.
func (c Combination) TotalPrice(bags int) float64 {
	var total float64
	for _, f := range c.legs {
		total += f.TotalPrice(bags)
	}
	return total
}

// MarshalJSON serializes a combination as its ordered leg list.
func (c Combination) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.legs)
}

// BagAllowance returns the most restrictive bag allowance across all legs.
func (c Combination) BagAllowance() int {
	allowance := c.legs[0].BagsAllowed
	for _, f := range c.legs[1:] {
		if f.BagsAllowed < allowance {
			allowance = f.BagsAllowed
		}
	}
	return allowance
}
