package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Default layover bounds applied when a search does not specify its own.
const (
	DefaultMinLayover = 1 * time.Hour
	DefaultMaxLayover = 6 * time.Hour
)

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// SearchConstraints bounds the combination search for a single leg.
// Optional fields use pointers because zero is a meaningful value for both
// the price ceiling and the connection limit.
type SearchConstraints struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// RequiredBags is the number of bags every flight must accommodate
	RequiredBags int `json:"requiredBags"`

	// MinLayover is the minimum gap between connecting flights (inclusive)
	MinLayover time.Duration `json:"minLayover"`

	// MaxLayover is the maximum gap between connecting flights (inclusive)
	MaxLayover time.Duration `json:"maxLayover"`

	// MaxPrice caps the total price; nil means unlimited
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// MaxConnections caps the number of connections; nil means unlimited
	MaxConnections *int `json:"maxConnections,omitempty"`

	// DepartureDate restricts the first leg to a calendar date; nil means any
	DepartureDate *time.Time `json:"departureDate,omitempty"`
}

// SetDefaults applies the default layover bounds to unset fields.
func (c *SearchConstraints) SetDefaults() {
	if c.MinLayover == 0 && c.MaxLayover == 0 {
		c.MinLayover = DefaultMinLayover
		c.MaxLayover = DefaultMaxLayover
	}
}

// Validate checks the constraints for internal consistency.
// Returns a wrapped ErrInvalidConstraints error on failure.
func (c *SearchConstraints) Validate() error {
	if !airportCodeRegex.MatchString(c.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidConstraints, c.Origin)
	}
	if !airportCodeRegex.MatchString(c.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidConstraints, c.Destination)
	}
	if c.Origin == c.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidConstraints)
	}
	if c.RequiredBags < 0 {
		return fmt.Errorf("%w: required bags must not be negative, got %d", ErrInvalidConstraints, c.RequiredBags)
	}
	if c.MinLayover < 0 {
		return fmt.Errorf("%w: minimum layover must not be negative, got %s", ErrInvalidConstraints, c.MinLayover)
	}
	if c.MaxLayover < c.MinLayover {
		return fmt.Errorf("%w: maximum layover (%s) must not be below minimum layover (%s)",
			ErrInvalidConstraints, c.MaxLayover, c.MinLayover)
	}
	if c.MaxPrice != nil && *c.MaxPrice < 0 {
		return fmt.Errorf("%w: maximum price must not be negative, got %.2f", ErrInvalidConstraints, *c.MaxPrice)
	}
	if c.MaxConnections != nil && *c.MaxConnections < 0 {
		return fmt.Errorf("%w: maximum connections must not be negative, got %d", ErrInvalidConstraints, *c.MaxConnections)
	}
	return nil
}

// TripConstraints bounds a full trip search. A nil Returning value requests a
// one-way trip; a present one requests a round trip whose endpoints mirror
// the departing leg.
type TripConstraints struct {
	// Departing constrains the outbound leg
	Departing SearchConstraints `json:"departing"`

	// Returning constrains the inbound leg, nil for one-way trips
	Returning *SearchConstraints `json:"returning,omitempty"`
}

// RoundTrip reports whether a returning leg was requested.
func (tc TripConstraints) RoundTrip() bool {
	return tc.Returning != nil
}

// RequiredBags is the bag count for the entire trip, read from the
// departing side. Both legs share it.
func (tc TripConstraints) RequiredBags() int {
	return tc.Departing.RequiredBags
}

// MaxPrice is the whole-trip price ceiling, read from the departing side.
func (tc TripConstraints) MaxPrice() *float64 {
	return tc.Departing.MaxPrice
}

// Validate checks both legs and their coherence. A returning leg must reverse
// the departing endpoints and agree on the bag count; conflicting trip
// configurations are rejected here, before any search runs.
func (tc *TripConstraints) Validate() error {
	if err := tc.Departing.Validate(); err != nil {
		return err
	}
	if tc.Returning == nil {
		return nil
	}
	if err := tc.Returning.Validate(); err != nil {
		return err
	}
	if tc.Returning.Origin != tc.Departing.Destination || tc.Returning.Destination != tc.Departing.Origin {
		return fmt.Errorf("%w: returning leg %s->%s must reverse the departing leg %s->%s",
			ErrInvalidConstraints,
			tc.Returning.Origin, tc.Returning.Destination,
			tc.Departing.Origin, tc.Departing.Destination)
	}
	if tc.Returning.RequiredBags != tc.Departing.RequiredBags {
		return fmt.Errorf("%w: both legs must share the same required bag count", ErrInvalidConstraints)
	}
	return nil
}
