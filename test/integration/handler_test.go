package integration

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-search/flight-trip-search-system/internal/adapter/catalog/csvfile"
	httpAdapter "github.com/trip-search/flight-trip-search-system/internal/adapter/http"
	"github.com/trip-search/flight-trip-search-system/internal/adapter/http/response"
	"github.com/trip-search/flight-trip-search-system/internal/usecase"
	"github.com/trip-search/flight-trip-search-system/test/testutil"
)

// newCatalogServer builds a test server over the example flights catalog.
func newCatalogServer(t *testing.T) *TestServer {
	t.Helper()
	catalog := csvfile.New(testutil.TestDataPath(t, "example_flights.csv"))
	return NewTestServer(usecase.NewTripSearchUseCase(catalog, nil))
}

func decodeSearch(t *testing.T, resp Response) httpAdapter.SearchTripsResponseDTO {
	t.Helper()
	var dto httpAdapter.SearchTripsResponseDTO
	require.NoError(t, json.Unmarshal(resp.Body, &dto))
	return dto
}

func TestSearchEndpoint_OneWay(t *testing.T) {
	ts := newCatalogServer(t)

	resp := ts.SearchRequest(map[string]interface{}{
		"origin":      "BRQ",
		"destination": "PRG",
	})

	require.Equal(t, http.StatusOK, resp.Code)
	dto := decodeSearch(t, resp)

	require.Len(t, dto.Trips, 3)
	assert.Equal(t, 3, dto.Metadata.TotalResults)
	assert.Equal(t, 7, dto.Metadata.FlightsLoaded)
	assert.Equal(t, "csv:example_flights.csv", dto.Metadata.Catalog)

	// Price ordering with departure tiebreak: the two 50.0 directs first.
	assert.InDelta(t, 50.0, dto.Trips[0].TotalPrice, 0.001)
	assert.Equal(t, "ZT0001", dto.Trips[0].Departing.Flights[0].FlightNo)
	assert.InDelta(t, 50.0, dto.Trips[1].TotalPrice, 0.001)
	assert.Equal(t, "ZT0007", dto.Trips[1].Departing.Flights[0].FlightNo)
	assert.InDelta(t, 70.0, dto.Trips[2].TotalPrice, 0.001)
	assert.Equal(t, 1, dto.Trips[2].Departing.Connections)
}

func TestSearchEndpoint_BagsNarrowResults(t *testing.T) {
	ts := newCatalogServer(t)

	resp := ts.SearchRequest(map[string]interface{}{
		"origin":      "BRQ",
		"destination": "PRG",
		"bags":        2,
	})

	require.Equal(t, http.StatusOK, resp.Code)
	dto := decodeSearch(t, resp)

	// The via-VIE itinerary allows only one bag on its first leg.
	require.Len(t, dto.Trips, 2)
	for _, trip := range dto.Trips {
		assert.Equal(t, 2, trip.BagsCount)
		assert.GreaterOrEqual(t, trip.BagsAllowed, 2)
		// Two bags at 9.0 each on top of the 50.0 base.
		assert.InDelta(t, 68.0, trip.TotalPrice, 0.001)
	}
}

func TestSearchEndpoint_RoundTrip(t *testing.T) {
	ts := newCatalogServer(t)

	resp := ts.SearchRequest(map[string]interface{}{
		"origin":      "BRQ",
		"destination": "PRG",
		"roundTrip":   true,
	})

	require.Equal(t, http.StatusOK, resp.Code)
	dto := decodeSearch(t, resp)

	// Two eligible outbound itineraries times two returns; the day-three
	// departure has no later return and drops out.
	require.Len(t, dto.Trips, 4)
	assert.True(t, dto.SearchCriteria.RoundTrip)
	for _, trip := range dto.Trips {
		require.NotNil(t, trip.Returning)
		assert.Equal(t, "BRQ", trip.Origin)
		assert.Equal(t, "PRG", trip.Destination)
	}
}

func TestSearchEndpoint_MaxPriceAndConnections(t *testing.T) {
	ts := newCatalogServer(t)

	resp := ts.SearchRequest(map[string]interface{}{
		"origin":         "BRQ",
		"destination":    "PRG",
		"maxPrice":       60.0,
		"maxConnections": 0,
	})

	require.Equal(t, http.StatusOK, resp.Code)
	dto := decodeSearch(t, resp)

	require.Len(t, dto.Trips, 2)
	for _, trip := range dto.Trips {
		assert.Equal(t, 0, trip.Departing.Connections)
		assert.LessOrEqual(t, trip.TotalPrice, 60.0)
	}
}

func TestSearchEndpoint_DepartureDate(t *testing.T) {
	ts := newCatalogServer(t)

	resp := ts.SearchRequest(map[string]interface{}{
		"origin":        "BRQ",
		"destination":   "PRG",
		"departureDate": "2026-09-03",
	})

	require.Equal(t, http.StatusOK, resp.Code)
	dto := decodeSearch(t, resp)

	require.Len(t, dto.Trips, 1)
	assert.Equal(t, "ZT0007", dto.Trips[0].Departing.Flights[0].FlightNo)
}

func TestSearchEndpoint_MaxResults(t *testing.T) {
	ts := newCatalogServer(t)

	resp := ts.SearchRequest(map[string]interface{}{
		"origin":      "BRQ",
		"destination": "PRG",
		"maxResults":  1,
	})

	require.Equal(t, http.StatusOK, resp.Code)
	dto := decodeSearch(t, resp)

	require.Len(t, dto.Trips, 1)
	assert.InDelta(t, 50.0, dto.Trips[0].TotalPrice, 0.001)
}

func TestSearchEndpoint_NoRoute(t *testing.T) {
	ts := newCatalogServer(t)

	resp := ts.SearchRequest(map[string]interface{}{
		"origin":      "VIE",
		"destination": "XXX",
	})

	require.Equal(t, http.StatusOK, resp.Code)
	dto := decodeSearch(t, resp)

	assert.Empty(t, dto.Trips)
	assert.Equal(t, 0, dto.Metadata.TotalResults)
}

func TestSearchEndpoint_ValidationFailure(t *testing.T) {
	ts := newCatalogServer(t)

	resp := ts.SearchRequest(map[string]interface{}{
		"origin":      "BRQ",
		"destination": "BRQ",
	})

	require.Equal(t, http.StatusBadRequest, resp.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(resp.Body, &detail))
	assert.Equal(t, response.CodeValidationError, detail.Code)
}

func TestSearchEndpoint_CatalogUnavailable(t *testing.T) {
	catalog := csvfile.New(filepath.Join(t.TempDir(), "missing.csv"))
	ts := NewTestServer(usecase.NewTripSearchUseCase(catalog, nil))

	resp := ts.SearchRequest(map[string]interface{}{
		"origin":      "BRQ",
		"destination": "PRG",
	})

	require.Equal(t, http.StatusServiceUnavailable, resp.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(resp.Body, &detail))
	assert.Equal(t, response.CodeCatalogUnavailable, detail.Code)
}

func TestHealthEndpoint(t *testing.T) {
	ts := newCatalogServer(t)

	resp := ts.Do(Request{Method: http.MethodGet, Path: "/health"})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, string(resp.Body), `"status":"ok"`)
}
