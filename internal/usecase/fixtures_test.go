package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trip-search/flight-trip-search-system/internal/domain"
)

// mustTime parses a catalog-format timestamp for test fixtures.
func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04:05", value)
	require.NoError(t, err)
	return parsed
}

// flight builds a test flight with default prices and bag allowance.
func flight(t *testing.T, number, origin, destination, departure, arrival string) domain.Flight {
	t.Helper()
	return domain.Flight{
		ID:           number,
		FlightNumber: number,
		Origin:       origin,
		Destination:  destination,
		Departure:    mustTime(t, departure),
		Arrival:      mustTime(t, arrival),
		BasePrice:    100,
		BagPrice:     10,
		BagsAllowed:  2,
	}
}

// constraints builds search constraints with the default layover bounds.
func constraints(origin, destination string) domain.SearchConstraints {
	return domain.SearchConstraints{
		Origin:      origin,
		Destination: destination,
		MinLayover:  time.Hour,
		MaxLayover:  6 * time.Hour,
	}
}

// flightNumbers flattens a combination into its flight number sequence.
func flightNumbers(c domain.Combination) []string {
	legs := c.Legs()
	numbers := make([]string, 0, len(legs))
	for _, leg := range legs {
		numbers = append(numbers, leg.FlightNumber)
	}
	return numbers
}
