package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"

	"github.com/trip-search/flight-trip-search-system/internal/domain"
	"github.com/trip-search/flight-trip-search-system/internal/infrastructure/timeutil"
)

// requiredColumns are the header names every catalog file must carry.
var requiredColumns = []string{
	"flight_no",
	"origin",
	"destination",
	"departure",
	"arrival",
	"base_price",
	"bag_price",
	"bags_allowed",
}

// Parse reads a CSV flight catalog from r, validating every record.
// Each flight gets a freshly generated ID. The first malformed record
// aborts the parse with a wrapped domain.ErrMalformedRecord carrying the
// record's line number.
func Parse(r io.Reader) ([]domain.Flight, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header row: %v", domain.ErrMalformedRecord, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", domain.ErrMalformedRecord, name)
		}
	}

	var flights []domain.Flight
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrMalformedRecord, line, err)
		}

		flight, err := parseRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		flights = append(flights, flight)
	}
	return flights, nil
}

// parseRecord converts one CSV record into a validated Flight.
func parseRecord(record []string, columns map[string]int) (domain.Flight, error) {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	origin := field("origin")
	destination := field("destination")
	if origin == destination {
		return domain.Flight{}, fmt.Errorf("%w: origin and destination are both %q", domain.ErrMalformedRecord, origin)
	}

	departure, err := timeutil.ParseTimestamp(field("departure"))
	if err != nil {
		return domain.Flight{}, fmt.Errorf("%w: departure: %v", domain.ErrMalformedRecord, err)
	}
	arrival, err := timeutil.ParseTimestamp(field("arrival"))
	if err != nil {
		return domain.Flight{}, fmt.Errorf("%w: arrival: %v", domain.ErrMalformedRecord, err)
	}
	if !arrival.After(departure) {
		return domain.Flight{}, fmt.Errorf("%w: arrival %s is not after departure %s",
			domain.ErrMalformedRecord, timeutil.FormatTimestamp(arrival), timeutil.FormatTimestamp(departure))
	}

	basePrice, err := parsePrice("base_price", field("base_price"))
	if err != nil {
		return domain.Flight{}, err
	}
	bagPrice, err := parsePrice("bag_price", field("bag_price"))
	if err != nil {
		return domain.Flight{}, err
	}

	bagsAllowed, err := strconv.Atoi(field("bags_allowed"))
	if err != nil {
		return domain.Flight{}, fmt.Errorf("%w: bags_allowed %q is not an integer", domain.ErrMalformedRecord, field("bags_allowed"))
	}
	if bagsAllowed < 0 {
		return domain.Flight{}, fmt.Errorf("%w: bags_allowed must not be negative, got %d", domain.ErrMalformedRecord, bagsAllowed)
	}

	return domain.Flight{
		ID:           uuid.New().String(),
		FlightNumber: field("flight_no"),
		Origin:       origin,
		Destination:  destination,
		Departure:    departure,
		Arrival:      arrival,
		BasePrice:    basePrice,
		BagPrice:     bagPrice,
		BagsAllowed:  bagsAllowed,
	}, nil
}

// parsePrice parses a non-negative price field.
func parsePrice(name, value string) (float64, error) {
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", domain.ErrMalformedRecord, name, value)
	}
	if price < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative, got %v", domain.ErrMalformedRecord, name, price)
	}
	return price, nil
}
