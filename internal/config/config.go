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

	"github.com/friendsincode/chimeschedule/internal/chime"
)

// Config covers process level configuration read from environment variables.
// Every value has a default, so an empty environment yields the stock chime.
type Config struct {
	Environment string
	Chime       chime.Config
}

// Load reads environment variables, applies defaults, and validates the result.
func Load() (*Config, error) {
	var invalid []string
	intVar := func(keys []string, def int) int {
		v, ok := getEnvIntAny(keys, def)
		if !ok {
			invalid = append(invalid, keys[0])
		}
		return v
	}

	cfg := &Config{
		Environment: getEnvAny([]string{"CHIME_ENV"}, "production"),
		Chime: chime.Config{
			EveryNSeconds:          intVar([]string{"CHIME_EVERY_N_SECONDS"}, chime.DefaultEveryNSeconds),
			OffsetSeconds:          intVar([]string{"CHIME_OFFSET_SECONDS"}, chime.DefaultOffsetSeconds),
			CycleSeconds:           intVar([]string{"CHIME_CYCLE_SECONDS"}, chime.DefaultCycleSeconds),
			Number:                 intVar([]string{"CHIME_NUMBER"}, chime.DefaultNumber),
			Count:                  intVar([]string{"CHIME_COUNT"}, chime.DefaultCount),
			InterChimeDelaySeconds: intVar([]string{"CHIME_INTER_CHIME_DELAY_SECONDS"}, chime.DefaultInterChimeDelaySeconds),
			InterHourDelaySeconds:  intVar([]string{"CHIME_INTER_HOUR_DELAY_SECONDS"}, chime.DefaultInterHourDelaySeconds),
		},
	}
	if len(invalid) > 0 {
		return nil, fmt.Errorf("invalid integer in %s", strings.Join(invalid, ", "))
	}

	if err := cfg.Chime.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment reports whether verbose diagnostics should be enabled.
func (c *Config) IsDevelopment() bool {
	return c != nil && strings.EqualFold(c.Environment, "development")
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
// ok is false when a key was set to something that is not an integer.
func getEnvIntAny(keys []string, def int) (int, bool) {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return def, false
			}
			return parsed, true
		}
	}
	return def, true
}
