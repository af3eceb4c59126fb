// Package csvfile loads flight catalogs from CSV files.
//
// The expected format is one header row followed by one record per flight:
//
//	flight_no,origin,destination,departure,arrival,base_price,bag_price,bags_allowed
//
// with timestamps in the naive local layout 2006-01-02T15:04:05. Every record
// is validated here, at the boundary; flights handed to the core are
// guaranteed well-formed.
package csvfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trip-search/flight-trip-search-system/internal/domain"
)

// Catalog is a file-backed implementation of domain.FlightCatalog.
type Catalog struct {
	path string
}

// New creates a catalog reading from the given CSV file path.
func New(path string) *Catalog {
	return &Catalog{path: path}
}

// Name returns the catalog source identifier.
func (c *Catalog) Name() string {
	return "csv:" + filepath.Base(c.path)
}

// Flights reads and validates all flight records from the file.
// The returned slice preserves file order.
func (c *Catalog) Flights(ctx context.Context) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(c.path)
	if err != nil {
		return nil, domain.NewCatalogError(c.Name(), fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err))
	}
	defer f.Close()

	flights, err := Parse(f)
	if err != nil {
		return nil, domain.NewCatalogError(c.Name(), err)
	}
	return flights, nil
}

// Ensure Catalog implements domain.FlightCatalog at compile time.
var _ domain.FlightCatalog = (*Catalog)(nil)
