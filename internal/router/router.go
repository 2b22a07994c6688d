// Package router wires the HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vehicle-workshop/internal/config"
	"github.com/iliyamo/vehicle-workshop/internal/handler"
	"github.com/iliyamo/vehicle-workshop/internal/middleware"
	"github.com/iliyamo/vehicle-workshop/internal/store"
)

// RegisterRoutes registers routes that need no authentication. Currently
// that is only the health check used by the kiosk watchdogs.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers login and logout. Login accepts a POST both at the
// root (where the login form submits) and at /login, rate limited so the
// static credential table cannot be guessed at. Logout carries no
// middleware at all: clearing the cookie is always allowed.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, ratelimit echo.MiddlewareFunc) {
	e.POST("/", a.Login, ratelimit)
	e.POST("/login", a.Login, ratelimit)
	e.GET("/logout", a.Logout)
}

// RegisterAPI registers the JSON API consumed by all five presentation
// surfaces. Every route requires a valid session with one of the known
// roles. The response cache (a pass-through when Redis is absent) is
// attached only to the polled GET endpoints, whose bodies are the same for
// every session. /api/me answers from the caller's own session and must
// never be served from a shared cache entry.
func RegisterAPI(e *echo.Echo, a *handler.AuthHandler, v *handler.VehicleHandler, o *handler.OptionHandler, sessionSecret string, cache echo.MiddlewareFunc) {
	api := e.Group("/api")
	api.Use(middleware.SessionAuth(sessionSecret))
	api.Use(middleware.RequireRole(config.Roles...))

	api.GET("/me", a.Me)

	api.GET("/vehicles", v.List, cache)
	api.POST("/add", v.Add)
	api.POST("/delete_vehicle", v.Delete)
	api.POST("/update", v.Update)
	api.POST("/toggle_visibility", v.ToggleVisibility)

	api.GET("/departments", o.List(store.Departments), cache)
	api.POST("/add_department", o.Add(store.Departments, "department"))
	api.POST("/delete_department", o.Remove(store.Departments, "department"))

	api.GET("/technicians", o.List(store.Technicians), cache)
	api.POST("/add_technician", o.Add(store.Technicians, "technician"))
	api.POST("/delete_technician", o.Remove(store.Technicians, "technician"))

	api.GET("/services", o.List(store.Services), cache)
	api.POST("/add_service", o.Add(store.Services, "service"))
	api.POST("/delete_service", o.Remove(store.Services, "service"))
}
