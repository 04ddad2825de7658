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

// Setup configures zerolog for the process. Logs go to stderr; stdout is
// reserved for the chime table.
func Setup(environment string) zerolog.Logger {
	return SetupWithWriter(environment, os.Stderr)
}

// SetupWithWriter configures zerolog with console output written to out.
func SetupWithWriter(environment string, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := zerolog.InfoLevel
	if environment == "development" {
		level = zerolog.DebugLevel
	}

	consoleWriter := zerolog.ConsoleWriter{Out: out, NoColor: true}

	logger := zerolog.New(consoleWriter).With().Timestamp().Logger().Level(level)
	log.Logger = logger
	return logger
}
