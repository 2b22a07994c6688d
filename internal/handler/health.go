package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a plain liveness endpoint for the kiosk watchdogs that restart
// the big-screen PCs when the service stops answering.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
