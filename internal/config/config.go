// Package config loads application configuration from environment
// variables. Everything has a default so the tracker runs out of the box on
// a workshop PC; the env vars exist for the few installs that need a
// different port, data directory or credentials.
package config

// Roles recognized by the access gate. Each role maps to exactly one
// presentation surface; there is no hierarchy between them.
const (
	RoleAdmin     = "admin"
	RoleStaff     = "staff"
	RoleDashboard = "dashboard"
	RoleDisplay   = "display"
	RoleReception = "reception"
)

// Roles lists every account the gate knows about, in login-page order.
var Roles = []string{RoleAdmin, RoleStaff, RoleDashboard, RoleDisplay, RoleReception}

// Config holds all runtime configuration values. Passwords maps each role
// account name to its plain-text password; the account table bcrypt-hashes
// them at startup so only hashes stay in memory.
type Config struct {
	Env           string            // application environment (e.g. "dev", "prod")
	Port          string            // HTTP port to listen on
	SessionSecret string            // secret used to sign session cookies
	DataDir       string            // directory holding the JSON collection files
	BcryptCost    int               // bcrypt cost for hashing account passwords
	Passwords     map[string]string // role account name -> password
}

// Load reads configuration from the environment, falling back to the
// built-in defaults. The default passwords match the original deployment
// and should be overridden via <ROLE>_PASSWORD in anything public-facing.
func Load() Config {
	return Config{
		Env:           getenv("APP_ENV", "dev"),
		Port:          getenv("APP_PORT", getenv("PORT", "5000")),
		SessionSecret: getenv("SESSION_SECRET", "supersecretkey123"),
		DataDir:       getenv("DATA_DIR", "."),
		BcryptCost:    atoi(getenv("BCRYPT_COST", "10")),
		Passwords: map[string]string{
			RoleAdmin:     getenv("ADMIN_PASSWORD", "admin123"),
			RoleStaff:     getenv("STAFF_PASSWORD", "staff123"),
			RoleDashboard: getenv("DASHBOARD_PASSWORD", "dashboard123"),
			RoleDisplay:   getenv("DISPLAY_PASSWORD", "display123"),
			RoleReception: getenv("RECEPTION_PASSWORD", "reception123"),
		},
	}
}
