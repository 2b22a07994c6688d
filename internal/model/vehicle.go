// Package model defines the records persisted by the workshop tracker.
// Vehicles are stored as a JSON array in vehicles.json; the three option
// lists (departments, technicians, services) are JSON arrays of strings.
// These structs carry json tags because the stored files and the API
// responses share the exact same shape.
package model

// Status values a vehicle moves through while in the workshop. The first
// entry is the default assigned to newly registered vehicles.
var Statuses = []string{"Waiting", "In Service", "Done"}

// Payments enumerates the payment states shown on the staff and admin boards.
var Payments = []string{"Paid", "Advance Paid", "Unpaid"}

// PartsOptions enumerates whether ordered spare parts have arrived.
var PartsOptions = []string{"Arrived", "Not Arrived"}

// Default values applied when a vehicle is created or when a stored record
// is missing a field on load.
const (
	DefaultStatus  = "Waiting"
	DefaultPayment = "Unpaid"
	DefaultParts   = "Not Arrived"
)

// Vehicle is one service ticket. The id is assigned at creation and is the
// only lookup key; every other field may be rewritten through the update
// endpoint. Department, service and technician are soft references into the
// option lists: they are filled from the lists on creation but never
// validated against them, and removing an option value does not touch
// vehicles already referencing it.
type Vehicle struct {
	ID          string `json:"id"`
	Customer    string `json:"customer"`
	VehicleNo   string `json:"vehicle_no"`
	VehicleName string `json:"vehicle_name"`
	Department  string `json:"department"`
	Service     string `json:"service"`
	Technician  string `json:"technician"`
	Status      string `json:"status"`
	Payment     string `json:"payment"`
	Parts       string `json:"parts"`
	Visible     bool   `json:"visible"`
	Watch       bool   `json:"watch"`
}
