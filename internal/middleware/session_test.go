package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vehicle-workshop/internal/utils"
)

const testSecret = "test-secret"

// run sends a request through the given middleware chain with a trivial
// terminal handler that records the role it saw.
func run(t *testing.T, req *http.Request, mws ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, any) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenRole any
	h := echo.HandlerFunc(func(c echo.Context) error {
		seenRole = c.Get("role")
		return c.String(http.StatusOK, "ok")
	})
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	if err := h(c); err != nil {
		t.Fatalf("chain returned error: %v", err)
	}
	return rec, seenRole
}

func TestSessionAuthValidCookie(t *testing.T) {
	token, err := utils.NewSessionToken(testSecret, "dashboard")
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token})

	rec, role := run(t, req, SessionAuth(testSecret))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if role != "dashboard" {
		t.Errorf("role in context = %v, want dashboard", role)
	}
}

func TestSessionAuthMissingCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
	rec, _ := run(t, req, SessionAuth(testSecret))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSessionAuthRejectsForgedToken(t *testing.T) {
	token, err := utils.NewSessionToken("other-secret", "admin")
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token})

	rec, _ := run(t, req, SessionAuth(testSecret))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	token, err := utils.NewSessionToken(testSecret, "display")
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token})
	rec, _ := run(t, req, SessionAuth(testSecret), RequireRole("display", "dashboard"))
	if rec.Code != http.StatusOK {
		t.Errorf("allowed role: status = %d, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token})
	rec, _ = run(t, req, SessionAuth(testSecret), RequireRole("admin"))
	if rec.Code != http.StatusForbidden {
		t.Errorf("wrong role: status = %d, want 403", rec.Code)
	}
}

func TestRequireRoleWithoutSession(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
	rec, _ := run(t, req, RequireRole("admin"))
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}
