/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/friendsincode/timeslot/pkg/timeslot"
)

var periodCmd = &cobra.Command{
	Use:   "period NAME",
	Short: "Print a calendar period as one slot",
	Long: `Print the slot covering a whole calendar period around now.

NAME is one of: ` + periodNames() + `

Weeks start on the day set by --week-start or TIMESLOT_WEEK_START.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: periodNamesList(),
	RunE:      runPeriod,
}

func init() {
	rootCmd.AddCommand(periodCmd)
}

func periodNamesList() []string {
	names := make([]string, 0, len(timeslot.Periods))
	for _, p := range timeslot.Periods {
		names = append(names, string(p))
	}
	return names
}

func periodNames() string {
	return strings.Join(periodNamesList(), ", ")
}

func runPeriod(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	s, err := newFactory().Period(timeslot.Period(strings.ToLower(args[0])))
	if err != nil {
		return fmt.Errorf("%w (want one of %s)", err, periodNames())
	}
	return newWriter(cmd).Spans(s)
}
