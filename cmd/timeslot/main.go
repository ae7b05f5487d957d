/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/friendsincode/timeslot/internal/config"
	"github.com/friendsincode/timeslot/internal/logging"
	"github.com/friendsincode/timeslot/internal/render"
	"github.com/friendsincode/timeslot/pkg/calendar"
	"github.com/friendsincode/timeslot/pkg/timeslot"
)

var (
	logger zerolog.Logger
	cfg    *config.Config
	clock  calendar.Clock = calendar.SystemClock{}
)

// Global flags
var (
	flagTimezone  string
	flagOutput    string
	flagWeekStart string
)

var rootCmd = &cobra.Command{
	Use:   "timeslot",
	Short: "Build and inspect time slots",
	Long: `timeslot builds contiguous time slots and groups of them.

Every command prints slot boundaries as inclusive start/end pairs, e.g. a one
hour slot at 10:00 is printed as 10:00:00 - 10:59:59.

Configuration is read from TIMESLOT_* environment variables and can be
overridden with the global flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTimezone, "tz", "", "IANA timezone (default TIMESLOT_TIMEZONE, TZ or local)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Output format: text, json or yaml (default TIMESLOT_OUTPUT or text)")
	rootCmd.PersistentFlags().StringVar(&flagWeekStart, "week-start", "", "First day of the week (default TIMESLOT_WEEK_START or monday)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration and applies global flag overrides.
func loadConfig() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if flagTimezone != "" {
		loc, err := calendar.LoadLocation(flagTimezone)
		if err != nil {
			return err
		}
		cfg.Timezone = flagTimezone
		cfg.Location = loc
	}
	if flagOutput != "" {
		format, err := render.ParseFormat(flagOutput)
		if err != nil {
			return err
		}
		cfg.Output = format
	}
	if flagWeekStart != "" {
		day, err := calendar.ParseWeekday(flagWeekStart)
		if err != nil {
			return err
		}
		cfg.WeekStart = day
	}

	logger = logging.Setup(cfg.Environment)
	logger.Debug().
		Str("timezone", cfg.Location.String()).
		Str("week_start", cfg.WeekStart.String()).
		Str("output", string(cfg.Output)).
		Msg("configuration loaded")
	return nil
}

// newFactory binds slot constructors to the configured calendar.
func newFactory() *timeslot.Factory {
	return timeslot.NewFactory(cfg.Calendar(calendar.WithClock(clock)))
}

// slotLength resolves --hours/--minutes against the configured default. When
// neither flag was set the default length applies; otherwise the given values
// are passed through as is and validated by the slot constructors.
func slotLength(cmd *cobra.Command, hours, minutes int) (int, int) {
	if !cmd.Flags().Changed("hours") && !cmd.Flags().Changed("minutes") {
		return cfg.DefaultHours, cfg.DefaultMinutes
	}
	return hours, minutes
}

func newWriter(cmd *cobra.Command) *render.Writer {
	return render.NewWriter(cmd.OutOrStdout(), cfg.Output)
}
