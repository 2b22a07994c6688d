package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.Port)
	}
	if cfg.DataDir != "." {
		t.Errorf("DataDir = %q, want .", cfg.DataDir)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("BcryptCost = %d, want 10", cfg.BcryptCost)
	}
	for _, role := range Roles {
		if cfg.Passwords[role] == "" {
			t.Errorf("no default password for role %q", role)
		}
	}
	if len(cfg.Passwords) != len(Roles) {
		t.Errorf("password table has %d entries, want %d", len(cfg.Passwords), len(Roles))
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DATA_DIR", "/var/lib/workshop")
	t.Setenv("STAFF_PASSWORD", "hunter2")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DataDir != "/var/lib/workshop" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Passwords[RoleStaff] != "hunter2" {
		t.Errorf("staff password override not applied")
	}
}

func TestPortFallsBackToPORT(t *testing.T) {
	t.Setenv("PORT", "9000")
	if cfg := Load(); cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 {
		t.Errorf("Capacity = %d, want clamp to 1", cfg.Capacity)
	}
	if cfg.RefillTokens != 1 {
		t.Errorf("RefillTokens = %d, want clamp to 1", cfg.RefillTokens)
	}
	if cfg.TTL < 5*cfg.RefillInterval {
		t.Errorf("TTL = %v below minimum for interval %v", cfg.TTL, cfg.RefillInterval)
	}
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()
	if !cfg.Enabled {
		t.Error("cache should default to enabled")
	}
	if !cfg.Methods["GET"] {
		t.Error("GET should be cached by default")
	}
	if cfg.TTL.Seconds() != 2 {
		t.Errorf("TTL = %v, want 2s", cfg.TTL)
	}
}
