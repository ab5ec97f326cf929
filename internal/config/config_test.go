package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "REPORT_START_MONTH", "WEEK_START", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8081" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.ReportStartMonth != "2025-07" {
		t.Errorf("ReportStartMonth = %q", cfg.ReportStartMonth)
	}
	if cfg.WeekStart != "sunday" {
		t.Errorf("WeekStart = %q", cfg.WeekStart)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults failed validation: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("REPORT_START_MONTH", "2024-01")
	t.Setenv("WEEK_START", "monday")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.Port != "9000" || cfg.ReportStartMonth != "2024-01" || cfg.WeekStart != "monday" || cfg.LogLevel != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:             "8081",
			ReportStartMonth: "2025-07",
			WeekStart:        "sunday",
			LogLevel:         "info",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"valid", func(c *Config) {}, ""},
		{"non-numeric port", func(c *Config) { c.Port = "abc" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "invalid port"},
		{"port zero", func(c *Config) { c.Port = "0" }, "invalid port"},
		{"bad start month", func(c *Config) { c.ReportStartMonth = "July 2025" }, "invalid report start month"},
		{"bad week start", func(c *Config) { c.WeekStart = "tuesday" }, "invalid week start"},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantMsg == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Validate() = %v, want message containing %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := &Config{Port: "abc", ReportStartMonth: "bad", WeekStart: "tuesday", LogLevel: "verbose"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"invalid port", "invalid report start month", "invalid week start", "invalid log level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q: %v", want, err)
		}
	}
}

func TestStartMonth(t *testing.T) {
	cfg := &Config{ReportStartMonth: "2025-07"}
	ym := cfg.StartMonth()
	if ym.Year != 2025 || ym.Month != time.July {
		t.Errorf("StartMonth = %v", ym)
	}
}

func TestWeekStartDay(t *testing.T) {
	tests := []struct {
		in   string
		want time.Weekday
	}{
		{"sunday", time.Sunday},
		{"monday", time.Monday},
	}
	for _, tt := range tests {
		cfg := &Config{WeekStart: tt.in}
		if got := cfg.WeekStartDay(); got != tt.want {
			t.Errorf("WeekStartDay(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"WARN", slog.LevelWarn},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.in}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
