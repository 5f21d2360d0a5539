package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.DataBackend != "jsonfile" {
		t.Fatalf("expected jsonfile backend, got %s", cfg.DataBackend)
	}
	if cfg.DataDir != "data" {
		t.Fatalf("expected data dir, got %s", cfg.DataDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestValidateRejectsBadBackend(t *testing.T) {
	cfg := Load()
	cfg.DataBackend = "postgres"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestValidateRejectsBadAMQPURL(t *testing.T) {
	cases := []string{"http://localhost:5672", "://bad"}
	for i, u := range cases {
		cfg := Load()
		cfg.AMQPURL = u
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d expected error for %q", i, u)
		}
	}
}

func TestStorePaths(t *testing.T) {
	cfg := Load()
	cfg.DataDir = "tmp"
	if got := cfg.CalendarFile(); got != filepath.Join("tmp", "calendar", "calendar.json") {
		t.Fatalf("unexpected calendar path %s", got)
	}
	if got := cfg.CashflowFile(); got != filepath.Join("tmp", "cashflow", "cashflow.json") {
		t.Fatalf("unexpected cashflow path %s", got)
	}
}
