// Package http provides the HTTP handler layer for the trip search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"fmt"
	"regexp"
	"time"
)

// SearchTripsRequest represents the request body for a trip search.
type SearchTripsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "BTW")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "REJ")
	Destination string `json:"destination"`

	// Bags is the number of bags the trip must accommodate (default: 0)
	Bags int `json:"bags"`

	// DepartureDate optionally restricts the outbound leg to a date (YYYY-MM-DD)
	DepartureDate string `json:"departureDate,omitempty"`

	// MinLayoverMinutes overrides the minimum connection time (default: 60)
	MinLayoverMinutes *int `json:"minLayoverMinutes,omitempty"`

	// MaxLayoverMinutes overrides the maximum connection time (default: 360)
	MaxLayoverMinutes *int `json:"maxLayoverMinutes,omitempty"`

	// MaxPrice caps the total trip price; omitted means unlimited
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// MaxConnections caps connections per leg (0 = direct flights only)
	MaxConnections *int `json:"maxConnections,omitempty"`

	// RoundTrip requests a returning leg back to the origin
	RoundTrip bool `json:"roundTrip"`

	// ReturnDepartureDate optionally restricts the returning leg to a date (YYYY-MM-DD)
	ReturnDepartureDate string `json:"returnDepartureDate,omitempty"`

	// SortBy specifies result ordering: price, duration, departure
	SortBy string `json:"sortBy,omitempty"`

	// MaxResults caps the number of trips returned (0 = unlimited)
	MaxResults int `json:"maxResults,omitempty"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid sort options, empty defaults to price.
var validSortOptions = map[string]bool{
	"price":     true,
	"duration":  true,
	"departure": true,
	"":          true,
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// ToMap converts the errors to a field -> message map for API responses.
func (v *ValidationErrors) ToMap() map[string]string {
	m := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		m[e.Field] = e.Message
	}
	return m
}

// add appends a field error.
func (v *ValidationErrors) add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// Validate checks the request and collects all field-level problems.
func (r *SearchTripsRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Origin == "" {
		errs.add("origin", "origin is required")
	} else if !airportCodePattern.MatchString(r.Origin) {
		errs.add("origin", fmt.Sprintf("origin must be a valid 3-letter IATA code, got %q", r.Origin))
	}

	if r.Destination == "" {
		errs.add("destination", "destination is required")
	} else if !airportCodePattern.MatchString(r.Destination) {
		errs.add("destination", fmt.Sprintf("destination must be a valid 3-letter IATA code, got %q", r.Destination))
	}

	if r.Origin != "" && r.Origin == r.Destination {
		errs.add("destination", "origin and destination must be different")
	}

	if r.Bags < 0 {
		errs.add("bags", "bags must not be negative")
	}

	if r.DepartureDate != "" {
		validateDate(errs, "departureDate", r.DepartureDate)
	}

	if r.MinLayoverMinutes != nil && *r.MinLayoverMinutes < 0 {
		errs.add("minLayoverMinutes", "minLayoverMinutes must not be negative")
	}
	if r.MaxLayoverMinutes != nil && *r.MaxLayoverMinutes < 0 {
		errs.add("maxLayoverMinutes", "maxLayoverMinutes must not be negative")
	}
	if r.MinLayoverMinutes != nil && r.MaxLayoverMinutes != nil && *r.MaxLayoverMinutes < *r.MinLayoverMinutes {
		errs.add("maxLayoverMinutes", "maxLayoverMinutes must not be below minLayoverMinutes")
	}

	if r.MaxPrice != nil && *r.MaxPrice < 0 {
		errs.add("maxPrice", "maxPrice must not be negative")
	}
	if r.MaxConnections != nil && *r.MaxConnections < 0 {
		errs.add("maxConnections", "maxConnections must not be negative")
	}

	if r.ReturnDepartureDate != "" {
		if !r.RoundTrip {
			errs.add("returnDepartureDate", "returnDepartureDate requires roundTrip to be true")
		} else {
			validateDate(errs, "returnDepartureDate", r.ReturnDepartureDate)
		}
	}

	if !validSortOptions[r.SortBy] {
		errs.add("sortBy", fmt.Sprintf("sortBy must be one of: price, duration, departure; got %q", r.SortBy))
	}

	if r.MaxResults < 0 {
		errs.add("maxResults", "maxResults must not be negative")
	}

	if len(errs.Errors) > 0 {
		return errs
	}
	return nil
}

// validateDate checks a YYYY-MM-DD field.
func validateDate(errs *ValidationErrors, field, value string) {
	if !datePattern.MatchString(value) {
		errs.add(field, fmt.Sprintf("%s must be in YYYY-MM-DD format, got %q", field, value))
		return
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		errs.add(field, fmt.Sprintf("%s is not a valid date: %s", field, value))
	}
}
