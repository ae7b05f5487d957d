/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/friendsincode/timeslot/pkg/timeslot"
)

// Slot flags
var (
	slotHours   int
	slotMinutes int
	slotRound   bool
	slotShift   int
	slotAfter   int
	slotBefore  int
)

var slotCmd = &cobra.Command{
	Use:   "slot [START]",
	Short: "Print a single slot and its neighbours",
	Long: `Build one slot starting at START, or at the current minute when START is
omitted, and print it.

Examples:
  # One hour starting at 10:00
  timeslot slot "2017-02-11 10:00:00"

  # 3h30m slot rounded down to the top of the hour
  timeslot slot "2019-11-04 12:15:15" --hours 3 --minutes 30 --round

  # The current hour plus the two slots that follow it
  timeslot slot --round --after 2
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSlot,
}

func init() {
	slotCmd.Flags().IntVar(&slotHours, "hours", 0, "Slot length in hours (default TIMESLOT_DEFAULT_HOURS)")
	slotCmd.Flags().IntVar(&slotMinutes, "minutes", 0, "Slot length in minutes (default TIMESLOT_DEFAULT_MINUTES)")
	slotCmd.Flags().BoolVarP(&slotRound, "round", "r", false, "Round the start down to the top of the hour")
	slotCmd.Flags().IntVar(&slotShift, "shift", 0, "Move the slot by this many hours")
	slotCmd.Flags().IntVar(&slotAfter, "after", 0, "Also print this many following slots")
	slotCmd.Flags().IntVar(&slotBefore, "before", 0, "Also print this many preceding slots")
	rootCmd.AddCommand(slotCmd)
}

func runSlot(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	if slotAfter < 0 || slotBefore < 0 {
		return fmt.Errorf("--after and --before must not be negative")
	}

	hours, minutes := slotLength(cmd, slotHours, slotMinutes)
	factory := newFactory()

	var start any
	if len(args) == 1 {
		start = args[0]
	}
	s, err := factory.Create(start, hours, minutes)
	if err != nil {
		return fmt.Errorf("create slot: %w", err)
	}
	if slotRound {
		s.Round()
	}
	if slotShift != 0 {
		s.AddHours(slotShift)
	}
	logger.Debug().Str("slot", s.String()).Int("hours", s.Hours()).Int("minutes", s.Minutes()).Msg("slot built")

	spans := make([]timeslot.Span, slotBefore+1+slotAfter)
	spans[slotBefore] = s
	for i, prev := slotBefore-1, s; i >= 0; i-- {
		prev = timeslot.Before(prev)
		spans[i] = prev
	}
	for i, next := slotBefore+1, s; i < len(spans); i++ {
		next = timeslot.After(next)
		spans[i] = next
	}

	return newWriter(cmd).Spans(spans...)
}
