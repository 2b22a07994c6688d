// Package store owns the four JSON collections (vehicles plus the three
// option lists) for the lifetime of the process. These sentinel errors let
// handlers map storage failures onto HTTP responses: ErrVehicleNotFound
// becomes a 404, ErrInvalidField and ErrEmptyValue become 400s. Anything
// else coming out of the store is a real I/O failure and surfaces as a 500.
package store

import "errors"

// ErrVehicleNotFound is returned when a mutation references a vehicle id
// that is not present in vehicles.json.
var ErrVehicleNotFound = errors.New("vehicle not found")

// ErrInvalidField is returned when an update names a field outside the
// fixed allow-list. The store is checked before the id lookup, so an
// unknown field on an unknown id still reports the field error.
var ErrInvalidField = errors.New("invalid field")

// ErrEmptyValue is returned when an option add/remove is given a value that
// is empty after trimming.
var ErrEmptyValue = errors.New("empty value")
