package handler

import (
	"encoding/json"
	"net/http"
	"reflect"
	"testing"

	"github.com/iliyamo/vehicle-workshop/internal/store"
)

func TestListOptions(t *testing.T) {
	h := NewOptionHandler(newTestStore(t))

	rec := doJSON(t, h.List(store.Departments), http.MethodGet, "/api/departments", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var deps []string
	if err := json.Unmarshal(rec.Body.Bytes(), &deps); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(deps, []string{"Mechanical", "Electrical", "Body Shop"}) {
		t.Errorf("departments = %v", deps)
	}
}

func TestAddOption(t *testing.T) {
	s := newTestStore(t)
	h := NewOptionHandler(s)

	rec := doJSON(t, h.Add(store.Technicians, "technician"), http.MethodPost,
		"/api/add_technician", `{"technician":"Meera"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	// Adding the same value again still succeeds and changes nothing.
	rec = doJSON(t, h.Add(store.Technicians, "technician"), http.MethodPost,
		"/api/add_technician", `{"technician":"Meera"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("duplicate add: status = %d, want 200", rec.Code)
	}

	rec = doJSON(t, h.List(store.Technicians), http.MethodGet, "/api/technicians", "")
	var techs []string
	if err := json.Unmarshal(rec.Body.Bytes(), &techs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(techs, []string{"Rajesh", "Syon", "Meera"}) {
		t.Errorf("technicians = %v", techs)
	}
}

func TestAddOptionEmptyValue(t *testing.T) {
	h := NewOptionHandler(newTestStore(t))

	for _, body := range []string{`{}`, `{"service":""}`, `{"service":"   "}`} {
		rec := doJSON(t, h.Add(store.Services, "service"), http.MethodPost, "/api/add_service", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestRemoveOption(t *testing.T) {
	s := newTestStore(t)
	h := NewOptionHandler(s)

	rec := doJSON(t, h.Remove(store.Services, "service"), http.MethodPost,
		"/api/delete_service", `{"service":"Oil Change"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	// Removing a value that is not there is still a success.
	rec = doJSON(t, h.Remove(store.Services, "service"), http.MethodPost,
		"/api/delete_service", `{"service":"Oil Change"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("missing remove: status = %d, want 200", rec.Code)
	}

	rec = doJSON(t, h.List(store.Services), http.MethodGet, "/api/services", "")
	var svcs []string
	if err := json.Unmarshal(rec.Body.Bytes(), &svcs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(svcs, []string{"General Service", "Full Inspection"}) {
		t.Errorf("services = %v", svcs)
	}
}
