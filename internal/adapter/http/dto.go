package http

import (
	"github.com/trip-search/flight-trip-search-system/internal/domain"
	"github.com/trip-search/flight-trip-search-system/internal/infrastructure/timeutil"
)

// SearchTripsResponseDTO is the data transfer object for search responses.
// It matches the expected API output format with snake_case fields.
type SearchTripsResponseDTO struct {
	SearchCriteria SearchCriteriaDTO `json:"search_criteria"`
	Metadata       MetadataDTO       `json:"metadata"`
	Trips          []TripDTO         `json:"trips"`
}

// SearchCriteriaDTO echoes the search parameters in the response.
type SearchCriteriaDTO struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Bags        int    `json:"bags"`
	RoundTrip   bool   `json:"round_trip"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	TotalResults  int    `json:"total_results"`
	FlightsLoaded int    `json:"flights_loaded"`
	Catalog       string `json:"catalog"`
	SearchTimeMs  int64  `json:"search_time_ms"`
}

// TripDTO is the data transfer object for a single trip.
type TripDTO struct {
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Departing   CombinationDTO  `json:"departing"`
	Returning   *CombinationDTO `json:"returning,omitempty"`
	BagsCount   int             `json:"bags_count"`
	BagsAllowed int             `json:"bags_allowed"`
	TotalPrice  float64         `json:"total_price"`
	TravelTime  string          `json:"travel_time"`
}

// CombinationDTO represents one leg of a trip.
type CombinationDTO struct {
	Flights     []FlightDTO `json:"flights"`
	Connections int         `json:"connections"`
	TotalPrice  float64     `json:"total_price"`
	TravelTime  string      `json:"travel_time"`
}

// FlightDTO is the data transfer object for a flight record.
type FlightDTO struct {
	FlightNo    string  `json:"flight_no"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Departure   string  `json:"departure"`
	Arrival     string  `json:"arrival"`
	BasePrice   float64 `json:"base_price"`
	BagPrice    float64 `json:"bag_price"`
	BagsAllowed int     `json:"bags_allowed"`
}

// ToSearchTripsResponseDTO converts a domain TripSearchResponse to its DTO.
func ToSearchTripsResponseDTO(resp *domain.TripSearchResponse) *SearchTripsResponseDTO {
	if resp == nil {
		return nil
	}

	dto := &SearchTripsResponseDTO{
		SearchCriteria: SearchCriteriaDTO{
			Origin:      resp.Constraints.Departing.Origin,
			Destination: resp.Constraints.Departing.Destination,
			Bags:        resp.Constraints.RequiredBags(),
			RoundTrip:   resp.Constraints.RoundTrip(),
		},
		Metadata: MetadataDTO{
			TotalResults:  resp.Metadata.TotalResults,
			FlightsLoaded: resp.Metadata.FlightsLoaded,
			Catalog:       resp.Metadata.Catalog,
			SearchTimeMs:  resp.Metadata.SearchDurationMs,
		},
		Trips: make([]TripDTO, len(resp.Trips)),
	}

	for i, trip := range resp.Trips {
		dto.Trips[i] = ToTripDTO(trip)
	}

	return dto
}

// ToTripDTO converts a domain Trip to a TripDTO.
func ToTripDTO(trip domain.Trip) TripDTO {
	dto := TripDTO{
		Origin:      trip.Origin(),
		Destination: trip.Destination(),
		Departing:   toCombinationDTO(trip.Departing, trip.Bags),
		BagsCount:   trip.Bags,
		BagsAllowed: trip.BagAllowance(),
		TotalPrice:  trip.TotalPrice(),
		TravelTime:  timeutil.FormatClock(trip.TravelTime()),
	}
	if trip.Returning != nil {
		returning := toCombinationDTO(*trip.Returning, trip.Bags)
		dto.Returning = &returning
	}
	return dto
}

// toCombinationDTO converts one leg of a trip.
func toCombinationDTO(cmb domain.Combination, bags int) CombinationDTO {
	legs := cmb.Legs()
	dto := CombinationDTO{
		Flights:     make([]FlightDTO, len(legs)),
		Connections: cmb.Connections(),
		TotalPrice:  cmb.TotalPrice(bags),
		TravelTime:  timeutil.FormatClock(cmb.TravelTime()),
	}
	for i, f := range legs {
		dto.Flights[i] = toFlightDTO(f)
	}
	return dto
}

// toFlightDTO converts a domain Flight to its DTO.
func toFlightDTO(f domain.Flight) FlightDTO {
	return FlightDTO{
		FlightNo:    f.FlightNumber,
		Origin:      f.Origin,
		Destination: f.Destination,
		Departure:   timeutil.FormatTimestamp(f.Departure),
		Arrival:     timeutil.FormatTimestamp(f.Arrival),
		BasePrice:   f.BasePrice,
		BagPrice:    f.BagPrice,
		BagsAllowed: f.BagsAllowed,
	}
}
