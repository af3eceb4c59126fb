// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/trip-search/flight-trip-search-system/internal/domain"
	"github.com/trip-search/flight-trip-search-system/internal/infrastructure/timeutil"
)

// TestDataPath returns the absolute path to a file in test/testdata.
func TestDataPath(t *testing.T, filename string) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	return filepath.Join(projectRoot, "test", "testdata", filename)
}

// LoadTestData reads a file from the testdata directory.
func LoadTestData(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(TestDataPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// MustParseTimestamp parses a catalog timestamp (2006-01-02T15:04:05).
// It fails the test if parsing fails.
func MustParseTimestamp(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := timeutil.ParseTimestamp(value)
	if err != nil {
		t.Fatalf("Failed to parse timestamp %s: %v", value, err)
	}
	return parsed
}

// MustParseDate parses a date string (2006-01-02).
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := timeutil.ParseDate(value)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", value, err)
	}
	return parsed
}

// MakeFlight builds a flight with the given route and schedule.
// Prices and allowances use sensible defaults that individual tests
// can override on the returned value.
func MakeFlight(t *testing.T, number, origin, destination, departure, arrival string) domain.Flight {
	t.Helper()
	return domain.Flight{
		ID:           number + "-" + origin + destination,
		FlightNumber: number,
		Origin:       origin,
		Destination:  destination,
		Departure:    MustParseTimestamp(t, departure),
		Arrival:      MustParseTimestamp(t, arrival),
		BasePrice:    100,
		BagPrice:     10,
		BagsAllowed:  2,
	}
}

// PriceFlight is MakeFlight with an explicit base price.
func PriceFlight(t *testing.T, number, origin, destination, departure, arrival string, basePrice float64) domain.Flight {
	t.Helper()
	f := MakeFlight(t, number, origin, destination, departure, arrival)
	f.BasePrice = basePrice
	return f
}

// Ptr returns a pointer to v. Useful for optional constraint fields.
func Ptr[T any](v T) *T {
	return &v
}
