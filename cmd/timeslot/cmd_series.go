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

// Series flags
var (
	seriesCount   int
	seriesHours   int
	seriesMinutes int
	seriesSort    bool
)

var seriesCmd = &cobra.Command{
	Use:   "series START [START...]",
	Short: "Print runs of consecutive slots",
	Long: `Build --count consecutive slots from every START and group the runs into
one collection. Runs stay in argument order unless --sort is given.

Examples:
  # Eight one hour slots from 10:00
  timeslot series "2018-12-23 10:00:00" --count 8

  # Two runs of four 30 minute slots, ordered by start
  timeslot series "2018-12-23 14:00" "2018-12-23 09:00" --count 4 --minutes 30 --sort
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSeries,
}

func init() {
	seriesCmd.Flags().IntVarP(&seriesCount, "count", "n", 1, "Number of slots in each run")
	seriesCmd.Flags().IntVar(&seriesHours, "hours", 0, "Slot length in hours (default TIMESLOT_DEFAULT_HOURS)")
	seriesCmd.Flags().IntVar(&seriesMinutes, "minutes", 0, "Slot length in minutes (default TIMESLOT_DEFAULT_MINUTES)")
	seriesCmd.Flags().BoolVar(&seriesSort, "sort", false, "Order runs by start time")
	rootCmd.AddCommand(seriesCmd)
}

func runSeries(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	hours, minutes := slotLength(cmd, seriesHours, seriesMinutes)
	factory := newFactory()

	var all *timeslot.Collection
	for _, arg := range args {
		first, err := factory.Parse(arg, hours, minutes)
		if err != nil {
			return fmt.Errorf("create slot: %w", err)
		}
		run, err := timeslot.NewCollection(first, seriesCount)
		if err != nil {
			return fmt.Errorf("create series: %w", err)
		}
		logger.Debug().Str("start", arg).Int("count", run.Count()).Msg("series built")

		var member timeslot.Span = run
		if len(args) == 1 {
			all = run
			continue
		}
		if all == nil {
			all, err = timeslot.NewCollection(member, 1)
		} else {
			err = all.Add(member)
		}
		if err != nil {
			return fmt.Errorf("group series: %w", err)
		}
	}

	if seriesSort {
		all.Sort()
	}
	return newWriter(cmd).Collection(all)
}
