package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UpdatePeriod != 100*time.Millisecond || cfg.DrawPeriod != 100*time.Millisecond {
		t.Fatalf("expected 100ms periods, got update=%s draw=%s", cfg.UpdatePeriod, cfg.DrawPeriod)
	}
	if cfg.InitialCustomers != 6 {
		t.Fatalf("expected 6 initial customers, got %d", cfg.InitialCustomers)
	}
	if cfg.DebugGrpcAddr != "" || cfg.DebugHTTPAddr != "" {
		t.Fatalf("expected debug servers disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("UPDATE_PERIOD", "50ms")
	t.Setenv("RNG_SEED", "42")
	t.Setenv("HEADLESS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UpdatePeriod != 50*time.Millisecond {
		t.Fatalf("expected 50ms update period, got %s", cfg.UpdatePeriod)
	}
	if cfg.RNGSeed != 42 {
		t.Fatalf("expected seed 42, got %d", cfg.RNGSeed)
	}
	if !cfg.Headless {
		t.Fatal("expected headless mode")
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("FRAME_RATE", "fast")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadRejectsZeroPeriod(t *testing.T) {
	t.Setenv("UPDATE_PERIOD", "0s")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero update period")
	}
}
