package usecase

import "github.com/trip-search/flight-trip-search-system/internal/domain"

// SearchOptions contains optional presentation parameters for a trip search.
type SearchOptions struct {
	// SortBy specifies how to order the results (default: price)
	SortBy domain.SortOption

	// MaxResults caps the number of trips returned after sorting.
	// Zero means unlimited.
	MaxResults int
}

// DefaultSearchOptions returns SearchOptions with sensible defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		SortBy:     domain.SortByPrice,
		MaxResults: 0,
	}
}
