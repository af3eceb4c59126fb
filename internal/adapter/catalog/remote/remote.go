// Package remote loads flight catalogs from an HTTP endpoint serving the
// same CSV format as the csvfile package. Transient failures (network
// errors, 5xx responses) are retried with exponential backoff; client
// errors and malformed payloads abort immediately.
package remote

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/trip-search/flight-trip-search-system/internal/adapter/catalog/csvfile"
	"github.com/trip-search/flight-trip-search-system/internal/domain"
	"github.com/trip-search/flight-trip-search-system/internal/infrastructure/retry"
)

// defaultTimeout bounds a single fetch attempt.
const defaultTimeout = 10 * time.Second

// Catalog is an HTTP-backed implementation of domain.FlightCatalog.
type Catalog struct {
	url      string
	client   *http.Client
	retryCfg retry.Config
}

// New creates a catalog fetching from the given URL with default
// client and retry settings.
func New(url string) *Catalog {
	return NewWithClient(url, &http.Client{Timeout: defaultTimeout})
}

// NewWithClient creates a catalog with a custom HTTP client.
// Useful for tests and callers that manage their own transport.
func NewWithClient(url string, client *http.Client) *Catalog {
	return &Catalog{
		url:      url,
		client:   client,
		retryCfg: retry.CatalogConfig.WithRetryIf(retry.SkipPermanent),
	}
}

// Name returns the catalog source identifier.
func (c *Catalog) Name() string {
	return "remote:" + c.url
}

// Flights fetches and parses the catalog, retrying transient failures.
func (c *Catalog) Flights(ctx context.Context) ([]domain.Flight, error) {
	flights, err := retry.DoWithResult(ctx, func() ([]domain.Flight, error) {
		return c.fetch(ctx)
	}, c.retryCfg)
	if err != nil {
		if retry.IsPermanent(err) {
			return nil, domain.NewCatalogError(c.Name(), err)
		}
		return nil, domain.NewRetryableCatalogError(c.Name(), err)
	}
	return flights, nil
}

// fetch performs a single catalog request.
func (c *Catalog) fetch(ctx context.Context) ([]domain.Flight, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, retry.NewPermanent(err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: catalog endpoint returned %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, retry.NewPermanent(fmt.Errorf("catalog endpoint returned %d", resp.StatusCode))
	}

	flights, err := csvfile.Parse(resp.Body)
	if err != nil {
		// A malformed payload will not fix itself on retry.
		return nil, retry.NewPermanent(err)
	}
	return flights, nil
}

// Ensure Catalog implements domain.FlightCatalog at compile time.
var _ domain.FlightCatalog = (*Catalog)(nil)
