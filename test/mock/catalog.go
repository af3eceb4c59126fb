// Package mock provides test doubles for the trip search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific flight sets).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/trip-search/flight-trip-search-system/internal/domain"
)

// Catalog is a configurable mock implementation of domain.FlightCatalog.
// It supports configurable delays, errors, and flight sets for testing
// various scenarios including timeouts and catalog failures.
type Catalog struct {
	name      string
	flights   []domain.Flight
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewCatalog creates a new mock catalog with the given name.
// The catalog is configured using the builder pattern methods.
func NewCatalog(name string) *Catalog {
	return &Catalog{name: name}
}

// WithFlights configures the catalog to return the given flights.
func (c *Catalog) WithFlights(flights []domain.Flight) *Catalog {
	c.flights = flights
	return c
}

// WithError configures the catalog to return the given error.
func (c *Catalog) WithError(err error) *Catalog {
	c.err = err
	return c
}

// WithDelay configures the catalog to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (c *Catalog) WithDelay(d time.Duration) *Catalog {
	c.delay = d
	return c
}

// Name returns the catalog's identifier.
func (c *Catalog) Name() string {
	return c.name
}

// Flights implements domain.FlightCatalog.Flights.
// It respects context cancellation, applies the configured delay,
// and returns the configured flights or error.
func (c *Catalog) Flights(ctx context.Context) ([]domain.Flight, error) {
	c.mu.Lock()
	c.callCount++
	c.mu.Unlock()

	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if c.err != nil {
		return nil, c.err
	}

	// Return a copy so callers cannot mutate the configured set.
	flights := make([]domain.Flight, len(c.flights))
	copy(flights, c.flights)
	return flights, nil
}

// CallCount returns how many times Flights has been invoked.
func (c *Catalog) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callCount
}

var _ domain.FlightCatalog = (*Catalog)(nil)
