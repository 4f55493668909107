package config

import (
	"os"
	"testing"
	"time"
)

func TestNew_defaults(t *testing.T) {
	for _, k := range []string{"TANK01_API_KEY", "PORT", "STORE_PATH", "POSTGRES_CONN_STR", "LEAGUE_FILE",
		"ADMIN_USER", "ADMIN_PASSWORD", "LOG_LEVEL", "LOG_FORMAT", "UPSTREAM_TIMEOUT", "REFRESH_SCHEDULE"} {
		// Setenv restores the variable after the test
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	c, err := New()
	if err != nil {
		t.Fatalf("error reading config: %v", err)
	}

	if c.Port != 3000 {
		t.Errorf("expected port 3000, got %d", c.Port)
	}
	if c.StorePath != "playoff_data.json" {
		t.Errorf("expected store path playoff_data.json, got %s", c.StorePath)
	}
	if c.UpstreamTimeout != 30*time.Second {
		t.Errorf("expected a 30s upstream timeout, got %v", c.UpstreamTimeout)
	}
	if c.AdminEnabled() {
		t.Errorf("admin routes should be disabled without a password")
	}
}

func TestNew_fromEnv(t *testing.T) {
	t.Setenv("TANK01_API_KEY", "abc123")
	t.Setenv("PORT", "8080")
	t.Setenv("ADMIN_USER", "commish")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("UPSTREAM_TIMEOUT", "5s")
	t.Setenv("REFRESH_SCHEDULE", "*/30 * * * *")

	c, err := New()
	if err != nil {
		t.Fatalf("error reading config: %v", err)
	}

	if c.Tank01APIKey != "abc123" {
		t.Errorf("expected api key abc123, got %s", c.Tank01APIKey)
	}
	if c.Port != 8080 {
		t.Errorf("expected port 8080, got %d", c.Port)
	}
	if !c.AdminEnabled() || c.AdminUser != "commish" {
		t.Errorf("expected admin routes for commish, got user %q enabled %v", c.AdminUser, c.AdminEnabled())
	}
	if c.UpstreamTimeout != 5*time.Second {
		t.Errorf("expected a 5s timeout, got %v", c.UpstreamTimeout)
	}
	if c.RefreshSchedule != "*/30 * * * *" {
		t.Errorf("unexpected schedule %q", c.RefreshSchedule)
	}
}

func TestNew_badValue(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	if _, err := New(); err == nil {
		t.Errorf("expected an error for a non numeric port")
	}
}
