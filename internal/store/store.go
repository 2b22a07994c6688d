// Package store implements the flat-file record store behind the workshop
// tracker. Each collection lives in its own JSON file under a data
// directory and is rewritten in full on every mutation. All operations are
// serialized behind an in-process mutex plus a flock file lock, so two
// concurrent mutations can never interleave their read-modify-write cycles
// and a second process pointed at the same directory waits instead of
// clobbering writes. Malformed files are tolerated as empty collections and
// logged on every occurrence; apart from the one-time option list seeding
// in New, a failed parse never rewrites the file it came from.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/iliyamo/vehicle-workshop/internal/model"
)

const (
	vehiclesFile = "vehicles.json"
	lockFile     = ".workshop.lock"

	lockRetryInterval = 10 * time.Millisecond
)

// OptionCollection names one of the three string option lists.
type OptionCollection string

const (
	Departments OptionCollection = "departments"
	Technicians OptionCollection = "technicians"
	Services    OptionCollection = "services"
)

var optionFiles = map[OptionCollection]string{
	Departments: "departments.json",
	Technicians: "technicians.json",
	Services:    "services.json",
}

// optionSeeds are written once, at store construction, when an option file
// is absent, empty or unreadable. After that the lists are whatever the
// add/remove endpoints left behind; deleting every value is a valid state
// and does not trigger re-seeding.
var optionSeeds = map[OptionCollection][]string{
	Departments: {"Mechanical", "Electrical", "Body Shop"},
	Technicians: {"Rajesh", "Syon"},
	Services:    {"General Service", "Oil Change", "Full Inspection"},
}

// Store is the single authority over the collection files. Handlers receive
// a *Store and route every read and mutation through it; nothing else in
// the process touches the JSON files.
type Store struct {
	dir  string
	mu   sync.Mutex
	flck *flock.Flock
}

// New opens (or creates) the data directory, seeds any missing option list
// and returns a ready Store.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &Store{
		dir:  dir,
		flck: flock.New(filepath.Join(dir, lockFile)),
	}
	for col, file := range optionFiles {
		if vals := s.loadStrings(file); len(vals) == 0 {
			if err := s.saveJSON(file, optionSeeds[col]); err != nil {
				return nil, fmt.Errorf("seed %s: %w", file, err)
			}
		}
	}
	return s, nil
}

// acquire takes the in-process mutex and the cross-process file lock. The
// returned release function must be called exactly once. The context bounds
// how long we wait on the file lock.
func (s *Store) acquire(ctx context.Context) (func(), error) {
	s.mu.Lock()
	ok, err := s.flck.TryLockContext(ctx, lockRetryInterval)
	if err != nil || !ok {
		s.mu.Unlock()
		if err == nil {
			err = errors.New("lock not acquired")
		}
		return nil, fmt.Errorf("acquire store lock: %w", err)
	}
	return func() {
		_ = s.flck.Unlock()
		s.mu.Unlock()
	}, nil
}

// ----- file helpers -----

func (s *Store) path(name string) string { return filepath.Join(s.dir, name) }

// loadStrings reads a string-array collection. Missing files and malformed
// content both come back as an empty list; only the malformed case is worth
// a log line because it means data sat in the file and was not readable.
func (s *Store) loadStrings(name string) []string {
	b, err := os.ReadFile(s.path(name))
	if err != nil {
		return []string{}
	}
	var vals []string
	if err := json.Unmarshal(b, &vals); err != nil {
		log.Printf("store: %s is not valid JSON (%v), treating as empty", name, err)
		return []string{}
	}
	if vals == nil {
		vals = []string{}
	}
	return vals
}

// saveJSON serializes the whole collection and overwrites the file. This is
// the only write path; a failure here is a genuine storage error and must
// fail the request that triggered it.
func (s *Store) saveJSON(name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// ----- vehicles -----

// rawVehicle mirrors model.Vehicle with pointer fields so that a key absent
// from the stored JSON can be told apart from one stored as its zero value.
// Only absent keys are backfilled; an explicit empty string survives a
// load/save round trip untouched.
type rawVehicle struct {
	ID          *string `json:"id"`
	Customer    *string `json:"customer"`
	VehicleNo   *string `json:"vehicle_no"`
	VehicleName *string `json:"vehicle_name"`
	Department  *string `json:"department"`
	Service     *string `json:"service"`
	Technician  *string `json:"technician"`
	Status      *string `json:"status"`
	Payment     *string `json:"payment"`
	Parts       *string `json:"parts"`
	Visible     *bool   `json:"visible"`
	Watch       *bool   `json:"watch"`
}

func strOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

func boolOr(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}

func first(vals []string) string {
	if len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// readVehiclesLocked loads vehicles.json and backfills every missing field
// with its default: the first entry of the matching option list for the
// soft references, fixed literals for everything else. Callers must hold
// the store lock.
func (s *Store) readVehiclesLocked() []model.Vehicle {
	b, err := os.ReadFile(s.path(vehiclesFile))
	if err != nil {
		return []model.Vehicle{}
	}
	var raws []rawVehicle
	if err := json.Unmarshal(b, &raws); err != nil {
		log.Printf("store: %s is not valid JSON (%v), treating as empty", vehiclesFile, err)
		return []model.Vehicle{}
	}

	departments := s.loadStrings(optionFiles[Departments])
	services := s.loadStrings(optionFiles[Services])
	technicians := s.loadStrings(optionFiles[Technicians])

	out := make([]model.Vehicle, 0, len(raws))
	for _, r := range raws {
		out = append(out, model.Vehicle{
			ID:          strOr(r.ID, uuid.NewString()),
			Customer:    strOr(r.Customer, ""),
			VehicleNo:   strOr(r.VehicleNo, ""),
			VehicleName: strOr(r.VehicleName, ""),
			Department:  strOr(r.Department, first(departments)),
			Service:     strOr(r.Service, first(services)),
			Technician:  strOr(r.Technician, first(technicians)),
			Status:      strOr(r.Status, model.DefaultStatus),
			Payment:     strOr(r.Payment, model.DefaultPayment),
			Parts:       strOr(r.Parts, model.DefaultParts),
			Visible:     boolOr(r.Visible, true),
			Watch:       boolOr(r.Watch, false),
		})
	}
	return out
}

// ReadVehicles returns the current vehicle collection, freshly loaded from
// disk with defaults backfilled. Every record in the result has all twelve
// fields populated.
func (s *Store) ReadVehicles(ctx context.Context) ([]model.Vehicle, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return s.readVehiclesLocked(), nil
}

// NewVehicle carries the caller-supplied fields for vehicle creation. All
// fields are optional except that the handler layer requires a JSON body;
// empty optional fields default from the option lists.
type NewVehicle struct {
	Customer    string
	VehicleNo   string
	VehicleName string
	Department  string
	Service     string
	Technician  string
	Status      string
}

// pick returns the trimmed value, or the first entry of the option list
// when the value is empty.
func pick(value string, options []string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return first(options)
}

// CreateVehicle appends a new record with a fresh id and persists the
// collection. Department, service and technician values are accepted as
// given; membership in the option lists is deliberately not checked.
func (s *Store) CreateVehicle(ctx context.Context, in NewVehicle) (model.Vehicle, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return model.Vehicle{}, err
	}
	defer release()

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = model.DefaultStatus
	}
	v := model.Vehicle{
		ID:          uuid.NewString(),
		Customer:    strings.TrimSpace(in.Customer),
		VehicleNo:   strings.TrimSpace(in.VehicleNo),
		VehicleName: strings.TrimSpace(in.VehicleName),
		Department:  pick(in.Department, s.loadStrings(optionFiles[Departments])),
		Service:     pick(in.Service, s.loadStrings(optionFiles[Services])),
		Technician:  pick(in.Technician, s.loadStrings(optionFiles[Technicians])),
		Status:      status,
		Payment:     model.DefaultPayment,
		Parts:       model.DefaultParts,
		Visible:     true,
		Watch:       false,
	}

	vehicles := append(s.readVehiclesLocked(), v)
	if err := s.saveJSON(vehiclesFile, vehicles); err != nil {
		return model.Vehicle{}, err
	}
	return v, nil
}

// DeleteVehicle removes the record with the given id. ErrVehicleNotFound is
// returned when no record matches; the file is left untouched in that case.
func (s *Store) DeleteVehicle(ctx context.Context, id string) error {
	release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	vehicles := s.readVehiclesLocked()
	kept := make([]model.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(vehicles) {
		return ErrVehicleNotFound
	}
	return s.saveJSON(vehiclesFile, kept)
}

// applyField writes one field of a vehicle. The allow-list lives in this
// switch; any other key is ErrInvalidField. The visible and watch fields
// coerce their value to a boolean, everything else is stored as a string.
// Status, payment, parts and the soft references accept any string - the
// store trusts the caller, as the boards send only known values.
func applyField(v *model.Vehicle, key string, value any) error {
	switch key {
	case "customer":
		v.Customer = asString(value)
	case "vehicle_no":
		v.VehicleNo = asString(value)
	case "vehicle_name":
		v.VehicleName = asString(value)
	case "department":
		v.Department = asString(value)
	case "service":
		v.Service = asString(value)
	case "technician":
		v.Technician = asString(value)
	case "status":
		v.Status = asString(value)
	case "payment":
		v.Payment = asString(value)
	case "parts":
		v.Parts = asString(value)
	case "visible":
		v.Visible = coerceBool(value)
	case "watch":
		v.Watch = coerceBool(value)
	default:
		return ErrInvalidField
	}
	return nil
}

func asString(value any) string {
	switch t := value.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

// coerceBool accepts native booleans and the string forms "1", "true",
// "yes" and "on" (case-insensitive, no whitespace trimming) as true;
// anything else is false.
func coerceBool(value any) bool {
	if b, ok := value.(bool); ok {
		return b
	}
	switch strings.ToLower(asString(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// allowedFields is the fixed set of vehicle fields the update endpoint may
// touch. The id is deliberately absent: it is immutable after creation.
var allowedFields = map[string]bool{
	"customer": true, "vehicle_no": true, "vehicle_name": true,
	"department": true, "service": true, "technician": true,
	"status": true, "payment": true, "parts": true,
	"visible": true, "watch": true,
}

// UpdateVehicleField sets a single field on the vehicle with the given id
// and persists the collection. The field check runs before the id lookup,
// so a bad key reports ErrInvalidField even for an unknown id.
func (s *Store) UpdateVehicleField(ctx context.Context, id, key string, value any) error {
	if !allowedFields[key] {
		return ErrInvalidField
	}

	release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	vehicles := s.readVehiclesLocked()
	for i := range vehicles {
		if vehicles[i].ID == id {
			_ = applyField(&vehicles[i], key, value)
			return s.saveJSON(vehiclesFile, vehicles)
		}
	}
	return ErrVehicleNotFound
}

// ToggleVisibility flips the visible flag of the vehicle with the given id
// and returns the new value.
func (s *Store) ToggleVisibility(ctx context.Context, id string) (bool, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return false, err
	}
	defer release()

	vehicles := s.readVehiclesLocked()
	for i := range vehicles {
		if vehicles[i].ID == id {
			vehicles[i].Visible = !vehicles[i].Visible
			if err := s.saveJSON(vehiclesFile, vehicles); err != nil {
				return false, err
			}
			return vehicles[i].Visible, nil
		}
	}
	return false, ErrVehicleNotFound
}

// ----- option lists -----

// Options returns the current contents of one option list.
func (s *Store) Options(ctx context.Context, col OptionCollection) ([]string, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return s.loadStrings(optionFiles[col]), nil
}

// AddOption appends a value to an option list. Adding a value that already
// exists (exact, case-sensitive match) is a successful no-op and does not
// rewrite the file.
func (s *Store) AddOption(ctx context.Context, col OptionCollection, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrEmptyValue
	}

	release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	vals := s.loadStrings(optionFiles[col])
	for _, v := range vals {
		if v == value {
			return nil
		}
	}
	return s.saveJSON(optionFiles[col], append(vals, value))
}

// RemoveOption deletes a value from an option list. Removing a value that
// is not present is a successful no-op. Vehicles referencing the removed
// value keep it; there is no cascade.
func (s *Store) RemoveOption(ctx context.Context, col OptionCollection, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrEmptyValue
	}

	release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	vals := s.loadStrings(optionFiles[col])
	kept := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != value {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(vals) {
		return nil
	}
	return s.saveJSON(optionFiles[col], kept)
}
