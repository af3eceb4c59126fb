package domain

// SortOption defines the available orderings for trip results. Sorting is a
// presentation concern applied after the search; the search itself yields
// trips in discovery order.
type SortOption string

// Available sort options.
const (
	// SortByPrice orders by total price, cheapest first, then by the
	// departing leg's departure time (default)
	SortByPrice SortOption = "price"

	// SortByDuration orders by total travel time, shortest first
	SortByDuration SortOption = "duration"

	// SortByDeparture orders by the departing leg's departure time,
	// earliest first
	SortByDeparture SortOption = "departure"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByPrice, SortByDuration, SortByDeparture:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByPrice if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortByPrice
}
