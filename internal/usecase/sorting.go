package usecase

import (
	"sort"

	"github.com/trip-search/flight-trip-search-system/internal/domain"
)

// sortTrips orders trips according to the sort option. The input slice is
// left untouched. Ties under the price ordering break on the departing
// leg's departure time, earliest first.
func sortTrips(trips []domain.Trip, sortBy domain.SortOption) []domain.Trip {
	if len(trips) <= 1 {
		return trips
	}

	result := make([]domain.Trip, len(trips))
	copy(result, trips)

	switch sortBy {
	case domain.SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].TravelTime() < result[j].TravelTime()
		})
	case domain.SortByDeparture:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Departing.First().Departure.Before(result[j].Departing.First().Departure)
		})
	case domain.SortByPrice:
		fallthrough
	default:
		sort.SliceStable(result, func(i, j int) bool {
			pi, pj := result[i].TotalPrice(), result[j].TotalPrice()
			if pi != pj {
				return pi < pj
			}
			return result[i].Departing.First().Departure.Before(result[j].Departing.First().Departure)
		})
	}

	return result
}
