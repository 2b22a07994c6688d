package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vehicle-workshop/internal/queue"
	"github.com/iliyamo/vehicle-workshop/internal/store"
)

// storeTimeout bounds how long a request waits on the store lock. File I/O
// is fast; the only way to hit this is a wedged lock holder.
const storeTimeout = 5 * time.Second

// EventSink receives a mutation event after the store write succeeded.
// main wires it to the RabbitMQ publisher; a nil sink disables events.
type EventSink func(ev queue.VehicleEvent)

// VehicleHandler bundles dependencies for the vehicle endpoints.
type VehicleHandler struct {
	Store  *store.Store
	Events EventSink
}

func NewVehicleHandler(s *store.Store, events EventSink) *VehicleHandler {
	return &VehicleHandler{Store: s, Events: events}
}

func (h *VehicleHandler) notify(c echo.Context, action, id, key string, value any) {
	if h.Events == nil {
		return
	}
	actor, _ := c.Get("role").(string)
	h.Events(queue.VehicleEvent{
		Action:    action,
		VehicleID: id,
		Key:       key,
		Value:     value,
		Actor:     actor,
		At:        time.Now().UTC().Format(time.RFC3339),
	})
}

// ----- DTOs -----

type addVehicleReq struct {
	Customer    string `json:"customer"`
	VehicleNo   string `json:"vehicle_no"`
	VehicleName string `json:"vehicle_name"`
	Department  string `json:"department"`
	Service     string `json:"service"`
	Technician  string `json:"technician"`
	Status      string `json:"status"`
}

type vehicleIDReq struct {
	ID string `json:"id"`
}

type updateFieldReq struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// List returns the full vehicle collection, freshly loaded from disk so the
// polling boards always see backfilled records.
func (h *VehicleHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	vehicles, err := h.Store.ReadVehicles(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "read vehicles failed"})
	}
	return c.JSON(http.StatusOK, vehicles)
}

// Add registers a new vehicle. Omitted option fields default from the
// current option lists; payment, parts, visible and watch always start at
// their fixed initial values.
func (h *VehicleHandler) Add(c echo.Context) error {
	var req addVehicleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	v, err := h.Store.CreateVehicle(ctx, store.NewVehicle{
		Customer:    req.Customer,
		VehicleNo:   req.VehicleNo,
		VehicleName: req.VehicleName,
		Department:  req.Department,
		Service:     req.Service,
		Technician:  req.Technician,
		Status:      req.Status,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "save vehicle failed"})
	}

	h.notify(c, "created", v.ID, "", nil)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "id": v.ID})
}

// Delete removes a vehicle by id. The id is required and must exist.
func (h *VehicleHandler) Delete(c echo.Context) error {
	var req vehicleIDReq
	if err := c.Bind(&req); err != nil || req.ID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Missing id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	if err := h.Store.DeleteVehicle(ctx, req.ID); err != nil {
		if errors.Is(err, store.ErrVehicleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Vehicle not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "delete vehicle failed"})
	}

	h.notify(c, "deleted", req.ID, "", nil)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Update sets a single field on a vehicle. The key must belong to the
// fixed allow-list; visible and watch coerce their value to a boolean.
func (h *VehicleHandler) Update(c echo.Context) error {
	var req updateFieldReq
	if err := c.Bind(&req); err != nil || req.ID == "" || req.Key == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Missing id or key"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	if err := h.Store.UpdateVehicleField(ctx, req.ID, req.Key, req.Value); err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidField):
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid field"})
		case errors.Is(err, store.ErrVehicleNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Vehicle not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "update vehicle failed"})
		}
	}

	h.notify(c, "updated", req.ID, req.Key, req.Value)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// ToggleVisibility flips whether a vehicle appears on the big-screen
// display and returns the new flag.
func (h *VehicleHandler) ToggleVisibility(c echo.Context) error {
	var req vehicleIDReq
	if err := c.Bind(&req); err != nil || req.ID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Missing id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	visible, err := h.Store.ToggleVisibility(ctx, req.ID)
	if err != nil {
		if errors.Is(err, store.ErrVehicleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Vehicle not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "update vehicle failed"})
	}

	h.notify(c, "updated", req.ID, "visible", visible)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "visible": visible})
}
