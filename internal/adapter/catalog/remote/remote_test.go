package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-search/flight-trip-search-system/internal/domain"
)

const validCSV = `flight_no,origin,destination,departure,arrival,base_price,bag_price,bags_allowed
ZT0001,BRQ,PRG,2026-09-01T06:00:00,2026-09-01T07:00:00,50.0,9.0,2
`

func TestCatalog_Flights(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/csv", r.Header.Get("Accept"))
		w.Write([]byte(validCSV))
	}))
	defer server.Close()

	catalog := NewWithClient(server.URL, server.Client())

	flights, err := catalog.Flights(context.Background())

	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "ZT0001", flights[0].FlightNumber)
	assert.Equal(t, "remote:"+server.URL, catalog.Name())
}

func TestCatalog_Flights_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(validCSV))
	}))
	defer server.Close()

	catalog := NewWithClient(server.URL, server.Client())

	flights, err := catalog.Flights(context.Background())

	require.NoError(t, err)
	assert.Len(t, flights, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestCatalog_Flights_ExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	catalog := NewWithClient(server.URL, server.Client())

	_, err := catalog.Flights(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsCatalogError(err))
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	assert.Equal(t, int32(3), calls.Load())
}

func TestCatalog_Flights_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	catalog := NewWithClient(server.URL, server.Client())

	_, err := catalog.Flights(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsCatalogError(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestCatalog_Flights_MalformedPayloadIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("not,a,catalog\n"))
	}))
	defer server.Close()

	catalog := NewWithClient(server.URL, server.Client())

	_, err := catalog.Flights(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCatalog_Flights_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(validCSV))
	}))
	defer server.Close()

	catalog := NewWithClient(server.URL, server.Client())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := catalog.Flights(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
