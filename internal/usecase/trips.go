package usecase

import (
	"iter"
	"slices"

	"github.com/trip-search/flight-trip-search-system/internal/domain"
)

// FindTrips assembles every eligible trip from the flight collection under
// the given constraints.
//
// The collection is first narrowed to flights that can carry the required
// bags and fit the per-flight price ceiling; a single index is built from
// that subset and shared by both legs of a round trip. The outbound leg is
// searched once. For a round trip the return leg is searched with the
// returning constraints and materialized, because the cartesian product
// scans it once per outbound combination; only pairs where the return
// departs strictly after the outbound arrives survive. One-way trips carry
// a nil returning leg. Every assembled trip passes through the whole-trip
// price check before it is yielded.
//
// The result is lazy and carries no ordering guarantee; sorting is the
// caller's concern.
func FindTrips(flights []domain.Flight, tc domain.TripConstraints) iter.Seq[domain.Trip] {
	return func(yield func(domain.Trip) bool) {
		eligible := make([]domain.Flight, 0, len(flights))
		for _, f := range flights {
			if FlightEligible(f, tc.Departing) {
				eligible = append(eligible, f)
			}
		}
		index := BuildFlightIndex(eligible)
		bags := tc.RequiredBags()

		if !tc.RoundTrip() {
			for dep := range FindCombinations(index, tc.Departing) {
				trip := domain.Trip{Departing: dep, Bags: bags}
				if !TripEligible(trip, tc.Departing) {
					continue
				}
				if !yield(trip) {
					return
				}
			}
			return
		}

		returning := slices.Collect(FindCombinations(index, *tc.Returning))
		for dep := range FindCombinations(index, tc.Departing) {
			for _, ret := range returning {
				// No overlap and no same-instant turnaround.
				if !ret.First().Departure.After(dep.Last().Arrival) {
					continue
				}
				trip := domain.Trip{Departing: dep, Returning: &ret, Bags: bags}
				if !TripEligible(trip, tc.Departing) {
					continue
				}
				if !yield(trip) {
					return
				}
			}
		}
	}
}
