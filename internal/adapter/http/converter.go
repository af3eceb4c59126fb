// Package http provides the HTTP handler layer for the trip search API.
package http

import (
	"strings"
	"time"

	"github.com/trip-search/flight-trip-search-system/internal/domain"
	"github.com/trip-search/flight-trip-search-system/internal/infrastructure/timeutil"
	"github.com/trip-search/flight-trip-search-system/internal/usecase"
)

// LayoverDefaults carries the layover bounds applied when a request does not
// specify its own. Zero values fall back to the domain defaults.
type LayoverDefaults struct {
	Min time.Duration
	Max time.Duration
}

// ToTripConstraints converts a validated SearchTripsRequest to domain
// TripConstraints. For a round trip the returning leg reverses the
// endpoints and shares bags, layover bounds and the connection limit.
func ToTripConstraints(req *SearchTripsRequest, defaults LayoverDefaults) domain.TripConstraints {
	minLayover := defaults.Min
	maxLayover := defaults.Max
	if minLayover == 0 && maxLayover == 0 {
		minLayover = domain.DefaultMinLayover
		maxLayover = domain.DefaultMaxLayover
	}
	if req.MinLayoverMinutes != nil {
		minLayover = time.Duration(*req.MinLayoverMinutes) * time.Minute
	}
	if req.MaxLayoverMinutes != nil {
		maxLayover = time.Duration(*req.MaxLayoverMinutes) * time.Minute
	}

	departing := domain.SearchConstraints{
		Origin:         strings.ToUpper(req.Origin),
		Destination:    strings.ToUpper(req.Destination),
		RequiredBags:   req.Bags,
		MinLayover:     minLayover,
		MaxLayover:     maxLayover,
		MaxPrice:       req.MaxPrice,
		MaxConnections: req.MaxConnections,
		DepartureDate:  parseOptionalDate(req.DepartureDate),
	}

	tc := domain.TripConstraints{Departing: departing}
	if req.RoundTrip {
		returning := departing
		returning.Origin = departing.Destination
		returning.Destination = departing.Origin
		returning.DepartureDate = parseOptionalDate(req.ReturnDepartureDate)
		tc.Returning = &returning
	}
	return tc
}

// ToSearchOptions converts the presentation parameters of a request.
func ToSearchOptions(req *SearchTripsRequest) usecase.SearchOptions {
	opts := usecase.DefaultSearchOptions()
	opts.SortBy = domain.ParseSortOption(req.SortBy)
	if req.MaxResults > 0 {
		opts.MaxResults = req.MaxResults
	}
	return opts
}

// parseOptionalDate parses a YYYY-MM-DD value already checked by Validate.
func parseOptionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	date, err := timeutil.ParseDate(value)
	if err != nil {
		return nil
	}
	return &date
}
