// Package cli implements the tripsearch command-line tool. It loads a flight
// catalog, runs a trip search and writes the resulting trips as JSON to
// stdout, sorted by total price and departure time.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/trip-search/flight-trip-search-system/internal/adapter/catalog/csvfile"
	"github.com/trip-search/flight-trip-search-system/internal/adapter/catalog/remote"
	"github.com/trip-search/flight-trip-search-system/internal/domain"
	"github.com/trip-search/flight-trip-search-system/internal/infrastructure/timeutil"
	"github.com/trip-search/flight-trip-search-system/internal/usecase"
)

// searchFlags holds the raw flag values before conversion to constraints.
type searchFlags struct {
	bags           int
	roundTrip      bool
	minLayover     time.Duration
	maxLayover     time.Duration
	maxPrice       float64
	maxPriceSet    bool
	maxConnections int
	maxConnsSet    bool
	departureDate  string
	returnDate     string
	sortBy         string
	limit          int
	verbose        bool
}

// NewRootCommand builds the tripsearch root command.
func NewRootCommand() *cobra.Command {
	flags := &searchFlags{}

	root := &cobra.Command{
		Use:   "tripsearch CATALOG ORIGIN DESTINATION",
		Short: "tripsearch finds flight combinations between two airports",
		Long: `tripsearch enumerates all one-way or round-trip itineraries between two
airports over a CSV flight catalog, honoring layover, baggage, price and
connection constraints. Results are written to stdout as JSON, cheapest first.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.maxPriceSet = cmd.Flags().Changed("max-price")
			flags.maxConnsSet = cmd.Flags().Changed("max-connections")
			return runSearch(cmd, args, flags)
		},
	}

	root.Flags().IntVarP(&flags.bags, "bags", "b", 0, "number of bags the trip must accommodate")
	root.Flags().BoolVarP(&flags.roundTrip, "return", "r", false, "search for a round trip")
	root.Flags().DurationVar(&flags.minLayover, "min-layover", domain.DefaultMinLayover, "minimum connection time")
	root.Flags().DurationVar(&flags.maxLayover, "max-layover", domain.DefaultMaxLayover, "maximum connection time")
	root.Flags().Float64Var(&flags.maxPrice, "max-price", 0, "maximum total trip price")
	root.Flags().IntVar(&flags.maxConnections, "max-connections", 0, "maximum connections per leg")
	root.Flags().StringVar(&flags.departureDate, "departure-date", "", "outbound departure date (YYYY-MM-DD)")
	root.Flags().StringVar(&flags.returnDate, "return-date", "", "return departure date (YYYY-MM-DD)")
	root.Flags().StringVar(&flags.sortBy, "sort", "price", "result ordering: price, duration, departure")
	root.Flags().IntVar(&flags.limit, "limit", 0, "maximum number of trips to print (0 = all)")
	root.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")

	return root
}

// runSearch executes the search described by the arguments and flags.
func runSearch(cmd *cobra.Command, args []string, flags *searchFlags) error {
	log := newLogger(flags.verbose)

	catalogArg, origin, destination := args[0], strings.ToUpper(args[1]), strings.ToUpper(args[2])

	tc, err := buildConstraints(origin, destination, flags)
	if err != nil {
		return err
	}

	catalog := newCatalog(catalogArg)
	log.Debug().Str("catalog", catalog.Name()).Msg("catalog configured")

	uc := usecase.NewTripSearchUseCase(catalog, nil)
	resp, err := uc.Search(cmd.Context(), tc, usecase.SearchOptions{
		SortBy:     domain.ParseSortOption(flags.sortBy),
		MaxResults: flags.limit,
	})
	if err != nil {
		return err
	}

	log.Debug().
		Int("flights", resp.Metadata.FlightsLoaded).
		Int("trips", resp.Metadata.TotalResults).
		Int64("duration_ms", resp.Metadata.SearchDurationMs).
		Msg("search finished")

	return writeTrips(cmd.OutOrStdout(), resp.Trips)
}

// buildConstraints converts CLI flags into trip constraints.
func buildConstraints(origin, destination string, flags *searchFlags) (domain.TripConstraints, error) {
	departing := domain.SearchConstraints{
		Origin:       origin,
		Destination:  destination,
		RequiredBags: flags.bags,
		MinLayover:   flags.minLayover,
		MaxLayover:   flags.maxLayover,
	}
	if flags.maxPriceSet {
		price := flags.maxPrice
		departing.MaxPrice = &price
	}
	if flags.maxConnsSet {
		conns := flags.maxConnections
		departing.MaxConnections = &conns
	}
	if flags.departureDate != "" {
		date, err := timeutil.ParseDate(flags.departureDate)
		if err != nil {
			return domain.TripConstraints{}, fmt.Errorf("invalid --departure-date: %w", err)
		}
		departing.DepartureDate = &date
	}

	tc := domain.TripConstraints{Departing: departing}
	if flags.roundTrip {
		returning := departing
		returning.Origin = departing.Destination
		returning.Destination = departing.Origin
		returning.DepartureDate = nil
		if flags.returnDate != "" {
			date, err := timeutil.ParseDate(flags.returnDate)
			if err != nil {
				return domain.TripConstraints{}, fmt.Errorf("invalid --return-date: %w", err)
			}
			returning.DepartureDate = &date
		}
		tc.Returning = &returning
	} else if flags.returnDate != "" {
		return domain.TripConstraints{}, fmt.Errorf("--return-date requires --return")
	}

	if err := tc.Validate(); err != nil {
		return domain.TripConstraints{}, err
	}
	return tc, nil
}

// newCatalog picks the catalog adapter from the argument form.
// HTTP(S) URLs go to the remote adapter, anything else is a file path.
func newCatalog(arg string) domain.FlightCatalog {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return remote.New(arg)
	}
	return csvfile.New(arg)
}

// newLogger builds the stderr logger for the CLI.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
