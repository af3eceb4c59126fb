package usecase

import "github.com/trip-search/flight-trip-search-system/internal/domain"

// The predicates in this file are pure and total: they never fail, they only
// answer whether a flight, combination or trip satisfies the constraints.
// Each one runs at the earliest point its input exists, so ineligible
// branches are pruned before the search spends time extending them.

// FlightEligible reports whether a single flight can participate in the
// search at all: it must accommodate the required bags and, when a price
// ceiling is set, fit under it on its own.
func FlightEligible(f domain.Flight, c domain.SearchConstraints) bool {
	if f.BagsAllowed < c.RequiredBags {
		return false
	}
	// Explicit nil check because a ceiling of 0 is a valid value.
	if c.MaxPrice != nil && f.TotalPrice(c.RequiredBags) > *c.MaxPrice {
		return false
	}
	return true
}

// ValidLayover reports whether the gap between an inbound flight's arrival
// and an outbound flight's departure lies within the layover bounds, both
// inclusive. The caller guarantees the flights meet at the same airport.
func ValidLayover(inbound, outbound domain.Flight, c domain.SearchConstraints) bool {
	layover := outbound.Departure.Sub(inbound.Arrival)
	return layover >= c.MinLayover && layover <= c.MaxLayover
}

// CombinationEligible reports whether a combination stays within the
// connection and price ceilings.
func CombinationEligible(cmb domain.Combination, c domain.SearchConstraints) bool {
	if c.MaxConnections != nil && cmb.Connections() > *c.MaxConnections {
		return false
	}
	if c.MaxPrice != nil && cmb.TotalPrice(c.RequiredBags) > *c.MaxPrice {
		return false
	}
	return true
}

// DepartsOnRequestedDate reports whether a flight departs on the requested
// date, or unconditionally true when no date is requested.
func DepartsOnRequestedDate(f domain.Flight, c domain.SearchConstraints) bool {
	if c.DepartureDate == nil {
		return true
	}
	return f.DepartsOn(*c.DepartureDate)
}

// TripEligible reports whether a fully assembled trip stays within the
// whole-trip price ceiling.
func TripEligible(t domain.Trip, c domain.SearchConstraints) bool {
	if c.MaxPrice != nil && t.TotalPrice() > *c.MaxPrice {
		return false
	}
	return true
}
