package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-search/flight-trip-search-system/internal/domain"
)

func priceTrip(t *testing.T, number, departure, arrival string, price float64) domain.Trip {
	t.Helper()
	f := flight(t, number, "BRQ", "PRG", departure, arrival)
	f.BasePrice = price
	return domain.Trip{Departing: domain.SingleLeg(f)}
}

func TestSortTrips_ByPrice(t *testing.T) {
	trips := []domain.Trip{
		priceTrip(t, "ZT0001", "2026-09-01T06:00:00", "2026-09-01T07:00:00", 90),
		priceTrip(t, "ZT0002", "2026-09-01T08:00:00", "2026-09-01T09:00:00", 50),
		priceTrip(t, "ZT0003", "2026-09-01T10:00:00", "2026-09-01T11:00:00", 70),
	}

	sorted := sortTrips(trips, domain.SortByPrice)

	require.Len(t, sorted, 3)
	assert.Equal(t, "ZT0002", sorted[0].Departing.First().FlightNumber)
	assert.Equal(t, "ZT0003", sorted[1].Departing.First().FlightNumber)
	assert.Equal(t, "ZT0001", sorted[2].Departing.First().FlightNumber)

	// The original slice is untouched.
	assert.Equal(t, "ZT0001", trips[0].Departing.First().FlightNumber)
}

func TestSortTrips_PriceTiesBreakOnDeparture(t *testing.T) {
	trips := []domain.Trip{
		priceTrip(t, "ZT0001", "2026-09-01T10:00:00", "2026-09-01T11:00:00", 50),
		priceTrip(t, "ZT0002", "2026-09-01T06:00:00", "2026-09-01T07:00:00", 50),
	}

	sorted := sortTrips(trips, domain.SortByPrice)

	assert.Equal(t, "ZT0002", sorted[0].Departing.First().FlightNumber)
	assert.Equal(t, "ZT0001", sorted[1].Departing.First().FlightNumber)
}

func TestSortTrips_ByDuration(t *testing.T) {
	trips := []domain.Trip{
		priceTrip(t, "ZT0001", "2026-09-01T06:00:00", "2026-09-01T09:00:00", 50),
		priceTrip(t, "ZT0002", "2026-09-01T06:00:00", "2026-09-01T07:00:00", 90),
	}

	sorted := sortTrips(trips, domain.SortByDuration)

	assert.Equal(t, "ZT0002", sorted[0].Departing.First().FlightNumber)
}

func TestSortTrips_ByDeparture(t *testing.T) {
	trips := []domain.Trip{
		priceTrip(t, "ZT0001", "2026-09-01T10:00:00", "2026-09-01T11:00:00", 50),
		priceTrip(t, "ZT0002", "2026-09-01T06:00:00", "2026-09-01T07:00:00", 90),
	}

	sorted := sortTrips(trips, domain.SortByDeparture)

	assert.Equal(t, "ZT0002", sorted[0].Departing.First().FlightNumber)
}

func TestSortTrips_SmallInputs(t *testing.T) {
	assert.Empty(t, sortTrips(nil, domain.SortByPrice))

	single := []domain.Trip{priceTrip(t, "ZT0001", "2026-09-01T06:00:00", "2026-09-01T07:00:00", 50)}
	assert.Len(t, sortTrips(single, domain.SortByPrice), 1)
}
