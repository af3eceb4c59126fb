package usecase

import (
	"context"
	"slices"

	"github.com/trip-search/flight-trip-search-system/internal/domain"
	"github.com/trip-search/flight-trip-search-system/internal/infrastructure/timeutil"
)

// TripSearchUseCase defines the interface for trip search operations.
type TripSearchUseCase interface {
	// Search loads the flight catalog, enumerates all eligible trips for the
	// given constraints and returns them sorted and limited per opts.
	Search(ctx context.Context, tc domain.TripConstraints, opts SearchOptions) (*domain.TripSearchResponse, error)
}

// tripSearchUseCase implements TripSearchUseCase against a flight catalog.
type tripSearchUseCase struct {
	catalog domain.FlightCatalog
	clock   timeutil.Clock
}

// NewTripSearchUseCase creates a TripSearchUseCase backed by the given
// catalog. A nil clock falls back to the system clock.
func NewTripSearchUseCase(catalog domain.FlightCatalog, clock timeutil.Clock) TripSearchUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &tripSearchUseCase{
		catalog: catalog,
		clock:   clock,
	}
}

// Search implements TripSearchUseCase.Search.
//
// The enumeration itself is synchronous and CPU-bound; the only I/O is the
// catalog load up front. Sorting happens after the full enumeration because
// the price ordering needs the complete result set, so MaxResults trims the
// cheapest N, not the first N discovered.
func (uc *tripSearchUseCase) Search(ctx context.Context, tc domain.TripConstraints, opts SearchOptions) (*domain.TripSearchResponse, error) {
	start := uc.clock.Now()

	if err := tc.Validate(); err != nil {
		return nil, err
	}

	flights, err := uc.catalog.Flights(ctx)
	if err != nil {
		return nil, err
	}

	trips := slices.Collect(FindTrips(flights, tc))
	sorted := sortTrips(trips, opts.SortBy)
	if opts.MaxResults > 0 && len(sorted) > opts.MaxResults {
		sorted = sorted[:opts.MaxResults]
	}

	return &domain.TripSearchResponse{
		Constraints: tc,
		Trips:       sorted,
		Metadata: domain.SearchMetadata{
			TotalResults:     len(sorted),
			FlightsLoaded:    len(flights),
			Catalog:          uc.catalog.Name(),
			RoundTrip:        tc.RoundTrip(),
			SearchDurationMs: uc.clock.Now().Sub(start).Milliseconds(),
		},
	}, nil
}

// Ensure tripSearchUseCase implements TripSearchUseCase at compile time.
var _ TripSearchUseCase = (*tripSearchUseCase)(nil)
