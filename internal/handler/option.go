package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vehicle-workshop/internal/store"
)

// OptionHandler serves the three option lists (departments, technicians,
// services). The endpoints share their shape - `{"department": "Body Shop"}`
// and friends - so each route is built from a generic handler bound to its
// collection and JSON field name.
type OptionHandler struct {
	Store *store.Store
}

func NewOptionHandler(s *store.Store) *OptionHandler {
	return &OptionHandler{Store: s}
}

// Add returns the handler for appending a value to the given collection.
// Adding an existing value succeeds without changing anything.
func (h *OptionHandler) Add(col store.OptionCollection, field string) echo.HandlerFunc {
	return func(c echo.Context) error {
		value, ok := bindOptionValue(c, field)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Empty name"})
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
		defer cancel()

		if err := h.Store.AddOption(ctx, col, value); err != nil {
			if errors.Is(err, store.ErrEmptyValue) {
				return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Empty name"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "save failed"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	}
}

// Remove returns the handler for deleting a value from the given
// collection. Removing a value that is not present succeeds; vehicles
// already referencing it are left alone.
func (h *OptionHandler) Remove(col store.OptionCollection, field string) echo.HandlerFunc {
	return func(c echo.Context) error {
		value, ok := bindOptionValue(c, field)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Empty name"})
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
		defer cancel()

		if err := h.Store.RemoveOption(ctx, col, value); err != nil {
			if errors.Is(err, store.ErrEmptyValue) {
				return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Empty name"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "save failed"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	}
}

// List returns the handler serving the current contents of a collection as
// a plain JSON string array.
func (h *OptionHandler) List(col store.OptionCollection) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
		defer cancel()

		vals, err := h.Store.Options(ctx, col)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "read failed"})
		}
		return c.JSON(http.StatusOK, vals)
	}
}

// bindOptionValue extracts the named field from the JSON body. A missing
// body, wrong type or empty string all report false.
func bindOptionValue(c echo.Context, field string) (string, bool) {
	body := map[string]string{}
	if err := c.Bind(&body); err != nil {
		return "", false
	}
	value, ok := body[field]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
