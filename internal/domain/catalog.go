package domain

import "context"

//go:generate mockgen -source=catalog.go -destination=mock_catalog.go -package=domain

// FlightCatalog is the port through which the search obtains its immutable
// flight collection. Implementations load and validate records from a
// concrete source (CSV file, remote feed); every Flight they return must
// already satisfy the record invariants, so the core never re-validates.
type FlightCatalog interface {
	// Name identifies the catalog source for logging and error reporting.
	Name() string

	// Flights returns all flight records in catalog order.
	Flights(ctx context.Context) ([]Flight, error)
}
