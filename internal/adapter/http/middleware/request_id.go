// Package middleware provides HTTP middleware for cross-cutting concerns:
// request ID correlation, request logging and panic recovery.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader is the header used to propagate request IDs.
	RequestIDHeader = "X-Request-ID"

	// requestIDKey is the echo context key the ID is stored under.
	requestIDKey = "request_id"
)

// RequestID returns middleware that assigns every request a correlation ID.
// An incoming X-Request-ID header is honored; otherwise a fresh UUID is
// generated. The ID is stored on the context and echoed back to the client.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			c.Set(requestIDKey, id)
			c.Response().Header().Set(RequestIDHeader, id)
			return next(c)
		}
	}
}

// GetRequestID returns the request's correlation ID, or "" when the
// RequestID middleware did not run.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}
