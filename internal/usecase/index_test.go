package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-search/flight-trip-search-system/internal/domain"
)

func TestBuildFlightIndex(t *testing.T) {
	flights := []domain.Flight{
		flight(t, "ZT0001", "BRQ", "PRG", "2026-09-01T06:00:00", "2026-09-01T07:00:00"),
		flight(t, "ZT0002", "BRQ", "VIE", "2026-09-01T06:30:00", "2026-09-01T07:30:00"),
		flight(t, "ZT0003", "VIE", "PRG", "2026-09-01T09:00:00", "2026-09-01T10:00:00"),
	}

	index := BuildFlightIndex(flights)

	require.Len(t, index, 2)
	assert.Len(t, index.Lookup("BRQ"), 2)
	assert.Len(t, index.Lookup("VIE"), 1)
}

func TestBuildFlightIndex_PreservesInputOrder(t *testing.T) {
	flights := []domain.Flight{
		flight(t, "ZT0001", "BRQ", "PRG", "2026-09-01T06:00:00", "2026-09-01T07:00:00"),
		flight(t, "ZT0002", "BRQ", "PRG", "2026-09-01T08:00:00", "2026-09-01T09:00:00"),
		flight(t, "ZT0003", "BRQ", "PRG", "2026-09-01T10:00:00", "2026-09-01T11:00:00"),
	}

	bucket := BuildFlightIndex(flights).Lookup("BRQ")

	require.Len(t, bucket, 3)
	assert.Equal(t, "ZT0001", bucket[0].FlightNumber)
	assert.Equal(t, "ZT0002", bucket[1].FlightNumber)
	assert.Equal(t, "ZT0003", bucket[2].FlightNumber)
}

func TestFlightIndex_LookupUnknownAirport(t *testing.T) {
	index := BuildFlightIndex(nil)
	assert.Nil(t, index.Lookup("XXX"))
}
