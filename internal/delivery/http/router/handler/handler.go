// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	"nutritrack/internal/delivery/http/middleware"
	"nutritrack/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// getUserID extracts the authenticated user ID; on failure the 401 response is already written.
func getUserID(c echo.Context) (uuid.UUID, bool, error) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return uuid.Nil, false, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, true, nil
}

// pathID parses a UUID path parameter; on failure the 400 response is already written.
func pathID(c echo.Context, name string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false, response.BadRequest(c, "INVALID_ID", "Invalid "+name)
	}

	return id, true, nil
}

// queryInt reads an optional integer query parameter.
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	return strconv.Atoi(raw)
}
