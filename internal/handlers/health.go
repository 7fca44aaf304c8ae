package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports that the console is up and which endpoint it talks to.
func Health(endpoint string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Endpoint: endpoint})
	}
}
