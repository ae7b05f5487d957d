/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures zerolog for the CLI. Logs go to stderr so stdout only
// carries rendered slots.
func Setup(environment string) zerolog.Logger {
	return SetupWithWriter(environment, os.Stderr)
}

// SetupWithWriter configures zerolog with a human-readable console writer on out.
func SetupWithWriter(environment string, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := zerolog.InfoLevel
	if environment == "development" {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: out, NoColor: true}

	logger := zerolog.New(writer).With().Timestamp().Logger().Level(level)
	log.Logger = logger
	return logger
}
