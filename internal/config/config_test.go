package config

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.URL == "" {
		t.Error("default URL should be set")
	}
	if cfg.OutputPath != "shropshire_bin_collections.ics" {
		t.Errorf("output path = %q", cfg.OutputPath)
	}
	if cfg.Timeout != 20*time.Second {
		t.Errorf("timeout = %v, expected 20s", cfg.Timeout)
	}
	if cfg.Timezone != "Europe/London" {
		t.Errorf("timezone = %q", cfg.Timezone)
	}
}

func TestDefaultDateLayout(t *testing.T) {
	cfg := Default()

	// The layout must accept exactly the page's title format and nothing
	// looser.
	if _, err := time.Parse(cfg.DateLayout, "Thursday 08, May 2025"); err != nil {
		t.Errorf("layout rejects the canonical title format: %v", err)
	}
	if _, err := time.Parse(cfg.DateLayout, "08/05/2025"); err == nil {
		t.Error("layout should reject numeric date strings")
	}
}

func TestLocation(t *testing.T) {
	loc, err := Default().Location()
	if err != nil {
		t.Fatalf("Location() error: %v", err)
	}
	if loc.String() != "Europe/London" {
		t.Errorf("location = %q", loc)
	}
}
