/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/friendsincode/timeslot/internal/render"
	"github.com/friendsincode/timeslot/pkg/calendar"
)

// Config covers CLI configuration read from environment variables.
type Config struct {
	Environment string
	Timezone    string
	Location    *time.Location
	WeekStart   time.Weekday
	Output      render.Format
	// Default slot length used when a command gets no --hours/--minutes.
	DefaultHours   int
	DefaultMinutes int
}

// Load reads environment variables, applies defaults, and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		Environment:    getEnvAny([]string{"TIMESLOT_ENV"}, "production"),
		Timezone:       getEnvAny([]string{"TIMESLOT_TIMEZONE", "TZ"}, "Local"),
		Output:         render.Format(strings.ToLower(getEnvAny([]string{"TIMESLOT_OUTPUT"}, string(render.FormatText)))),
		DefaultHours:   getEnvIntAny([]string{"TIMESLOT_DEFAULT_HOURS"}, 1),
		DefaultMinutes: getEnvIntAny([]string{"TIMESLOT_DEFAULT_MINUTES"}, 0),
	}

	loc, err := calendar.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMESLOT_TIMEZONE: %w", err)
	}
	cfg.Location = loc

	weekStart, err := calendar.ParseWeekday(getEnvAny([]string{"TIMESLOT_WEEK_START"}, "monday"))
	if err != nil {
		return nil, fmt.Errorf("TIMESLOT_WEEK_START: %w", err)
	}
	cfg.WeekStart = weekStart

	if _, err := render.ParseFormat(string(cfg.Output)); err != nil {
		return nil, fmt.Errorf("TIMESLOT_OUTPUT: %w", err)
	}

	if cfg.DefaultHours < 0 || cfg.DefaultMinutes < 0 || (cfg.DefaultHours == 0 && cfg.DefaultMinutes == 0) {
		return nil, fmt.Errorf("TIMESLOT_DEFAULT_HOURS and TIMESLOT_DEFAULT_MINUTES must describe a positive length, got %dh%dm", cfg.DefaultHours, cfg.DefaultMinutes)
	}

	return cfg, nil
}

// Calendar builds the calendar described by the configuration.
func (c *Config) Calendar(opts ...calendar.Option) *calendar.Calendar {
	base := []calendar.Option{
		calendar.WithLocation(c.Location),
		calendar.WithWeekStart(c.WeekStart),
	}
	return calendar.New(append(base, opts...)...)
}

// getEnvAny returns the first non-empty environment variable value from keys, or def if none set.
func getEnvAny(keys []string, def string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

// getEnvIntAny returns the first set integer environment variable value from keys, or def.
func getEnvIntAny(keys []string, def int) int {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil {
				return parsed
			}
		}
	}
	return def
}
