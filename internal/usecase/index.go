// Package usecase contains the business logic for trip search operations:
// the flight index, the constraint predicates, the depth-first combination
// search and the trip assembly that pairs outbound and return legs.
package usecase

import "github.com/trip-search/flight-trip-search-system/internal/domain"

// FlightIndex groups flights by origin airport for O(1) lookup of outbound
// flights during the search. Input order is preserved within each bucket;
// it controls traversal order, never result membership.
type FlightIndex map[string][]domain.Flight

// BuildFlightIndex builds an index from the given flight collection.
func BuildFlightIndex(flights []domain.Flight) FlightIndex {
	index := make(FlightIndex)
	for _, f := range flights {
		index[f.Origin] = append(index[f.Origin], f)
	}
	return index
}

// Lookup returns the flights departing from the given airport.
// Unknown airports yield a nil slice, not an error.
func (idx FlightIndex) Lookup(airport string) []domain.Flight {
	return idx[airport]
}
