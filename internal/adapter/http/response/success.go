package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes the health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{Status: "ok"})
}

// SearchResults writes a 200 OK response carrying the search result payload.
func SearchResults(c echo.Context, results interface{}) error {
	return c.JSON(http.StatusOK, results)
}
