package cli

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}
	for i, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Fatalf("case %d ParseLevel(%q) = %v, expected %v", i, tc.in, got, tc.want)
		}
	}
}

func TestSetupDefaults(t *testing.T) {
	cfg, logger := Setup("skill")
	if cfg == nil || logger == nil {
		t.Fatalf("setup returned nil")
	}
	if cfg.DataBackend == "" {
		t.Fatalf("expected a default data backend")
	}
	if logger.Component() != "skill" {
		t.Fatalf("unexpected component %q", logger.Component())
	}
}
