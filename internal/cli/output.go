package cli

import (
	"encoding/json"
	"io"

	"github.com/trip-search/flight-trip-search-system/internal/domain"
	"github.com/trip-search/flight-trip-search-system/internal/infrastructure/timeutil"
)

// tripRecord is the stdout representation of a single trip.
type tripRecord struct {
	Flights     []flightRecord `json:"flights"`
	BagsAllowed int            `json:"bags_allowed"`
	BagsCount   int            `json:"bags_count"`
	Destination string         `json:"destination"`
	Origin      string         `json:"origin"`
	TotalPrice  float64        `json:"total_price"`
	TravelTime  string         `json:"travel_time"`
}

type flightRecord struct {
	FlightNo    string  `json:"flight_no"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Departure   string  `json:"departure"`
	Arrival     string  `json:"arrival"`
	BasePrice   float64 `json:"base_price"`
	BagPrice    float64 `json:"bag_price"`
	BagsAllowed int     `json:"bags_allowed"`
}

// writeTrips encodes trips as an indented JSON array. An empty result
// prints [] rather than null so consumers always get an array.
func writeTrips(w io.Writer, trips []domain.Trip) error {
	records := make([]tripRecord, 0, len(trips))
	for _, trip := range trips {
		records = append(records, toTripRecord(trip))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(records)
}

func toTripRecord(trip domain.Trip) tripRecord {
	legs := trip.Legs()
	flights := make([]flightRecord, 0, len(legs))
	for _, leg := range legs {
		flights = append(flights, flightRecord{
			FlightNo:    leg.FlightNumber,
			Origin:      leg.Origin,
			Destination: leg.Destination,
			Departure:   timeutil.FormatTimestamp(leg.Departure),
			Arrival:     timeutil.FormatTimestamp(leg.Arrival),
			BasePrice:   leg.BasePrice,
			BagPrice:    leg.BagPrice,
			BagsAllowed: leg.BagsAllowed,
		})
	}

	return tripRecord{
		Flights:     flights,
		BagsAllowed: trip.BagAllowance(),
		BagsCount:   trip.Bags,
		Destination: trip.Destination(),
		Origin:      trip.Origin(),
		TotalPrice:  trip.TotalPrice(),
		TravelTime:  timeutil.FormatClock(trip.TravelTime()),
	}
}
