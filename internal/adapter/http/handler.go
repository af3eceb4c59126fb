package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/trip-search/flight-trip-search-system/internal/adapter/http/response"
	"github.com/trip-search/flight-trip-search-system/internal/domain"
	"github.com/trip-search/flight-trip-search-system/internal/usecase"
)

// TripHandler handles HTTP requests for trip search endpoints.
type TripHandler struct {
	useCase  usecase.TripSearchUseCase
	defaults LayoverDefaults
}

// NewTripHandler creates a new TripHandler with the given use case and
// layover defaults.
func NewTripHandler(uc usecase.TripSearchUseCase, defaults LayoverDefaults) *TripHandler {
	return &TripHandler{
		useCase:  uc,
		defaults: defaults,
	}
}

// SearchTrips handles POST /api/v1/trips/search
//
// @Summary Search for trips
// @Description Search the flight catalog for one-way or round-trip itineraries
// @Tags trips
// @Accept json
// @Produce json
// @Param request body SearchTripsRequest true "Search constraints"
// @Success 200 {object} SearchTripsResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Catalog unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/trips/search [post]
func (h *TripHandler) SearchTrips(c echo.Context) error {
	var req SearchTripsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	constraints := ToTripConstraints(&req, h.defaults)
	opts := ToSearchOptions(&req)

	result, err := h.useCase.Search(c.Request().Context(), constraints, opts)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchTripsResponseDTO(result))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *TripHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *TripHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrInvalidConstraints) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}
	if domain.IsCatalogError(err) || errors.Is(err, domain.ErrCatalogUnavailable) {
		return response.CatalogUnavailable(c)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *TripHandler) Health(c echo.Context) error {
	return response.Health(c)
}
