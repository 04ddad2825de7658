/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/friendsincode/chimeschedule/internal/chime"
	"github.com/friendsincode/chimeschedule/internal/clock"
	"github.com/friendsincode/chimeschedule/internal/config"
	"github.com/friendsincode/chimeschedule/internal/logging"
	"github.com/friendsincode/chimeschedule/internal/report"
)

var (
	logger zerolog.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "chimeschedule",
	Short: "Print the chime times of the next cycle",
	Long: `Compute when the Initial, Second, Third and Hour chimes fire after the next
chime boundary, and compare the Twelve, Six, Nine and Three o'clock slots side by side.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSchedule,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration and sets up logging.
func loadConfig() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger = logging.Setup(cfg.Environment)
	return nil
}

func runSchedule(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	return printSchedule(cmd.OutOrStdout(), cfg.Chime, clock.System{}, time.Local, logger)
}

// printSchedule runs the four-reference comparison and writes the table to w.
func printSchedule(w io.Writer, chimeCfg chime.Config, clk clock.Clock, loc *time.Location, logger zerolog.Logger) error {
	scheduler, err := chime.NewScheduler(chimeCfg, logger)
	if err != nil {
		return fmt.Errorf("initialize scheduler: %w", err)
	}

	cmp := scheduler.Compare(clk, chime.DefaultReferences(chimeCfg.Number))
	if err := report.Render(w, report.Build(cmp, loc)); err != nil {
		return err
	}
	return nil
}
