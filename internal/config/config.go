package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"fbmobile/internal/period"
)

type Config struct {
	// HTTP Server
	Port string

	// Reporting
	ReportStartMonth string // first month shown on the dashboard, YYYY-MM
	WeekStart        string // sunday or monday

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8081"),
		ReportStartMonth: getEnv("REPORT_START_MONTH", "2025-07"),
		WeekStart:        getEnv("WEEK_START", "sunday"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := period.ParseYearMonth(c.ReportStartMonth); err != nil {
		errors = append(errors, fmt.Sprintf("invalid report start month '%s': must be YYYY-MM", c.ReportStartMonth))
	}

	if _, err := period.ParseWeekday(c.WeekStart); err != nil {
		errors = append(errors, fmt.Sprintf("invalid week start '%s': must be 'sunday' or 'monday'", c.WeekStart))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// StartMonth returns the parsed report start month. Call Validate first.
func (c *Config) StartMonth() period.YearMonth {
	ym, err := period.ParseYearMonth(c.ReportStartMonth)
	if err != nil {
		return period.YearMonthOf(time.Now())
	}
	return ym
}

// WeekStartDay returns the parsed week start day. Call Validate first.
func (c *Config) WeekStartDay() time.Weekday {
	day, err := period.ParseWeekday(c.WeekStart)
	if err != nil {
		return time.Sunday
	}
	return day
}

// SlogLevel maps the configured log level onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
