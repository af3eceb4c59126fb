package domain

// TripSearchResponse is the aggregated result of a trip search.
type TripSearchResponse struct {
	// Constraints echoes the constraints the search ran with
	Constraints TripConstraints `json:"constraints"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Trips contains the trips after sorting and limiting
	Trips []Trip `json:"trips"`
}

// SearchMetadata describes how a search executed.
type SearchMetadata struct {
	// TotalResults is the number of trips returned
	TotalResults int `json:"totalResults"`

	// FlightsLoaded is the number of flight records read from the catalog
	FlightsLoaded int `json:"flightsLoaded"`

	// Catalog is the name of the catalog source queried
	Catalog string `json:"catalog"`

	// RoundTrip indicates whether a returning leg was searched
	RoundTrip bool `json:"roundTrip"`

	// SearchDurationMs is the wall-clock duration of the search in milliseconds
	SearchDurationMs int64 `json:"searchDurationMs"`
}
