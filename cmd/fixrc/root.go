package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/fixrc/cmd/fixrc/opts"
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, ro *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&ro.ConfigFile, "config", "c", "", "config file path, resolved from the working directory when empty")
	cmd.PersistentFlags().BoolVarP(&ro.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&ro.Async, "async", false, "run the operation on a background goroutine")
	cmd.PersistentFlags().IntVarP(&ro.Jobs, "jobs", "j", 0, "max files repaired concurrently, overriding the config")
	cmd.PersistentFlags().StringVar(&ro.Report, "report", "", "write a JSON run report to this path")
}

// setupLogging configures zerolog based on flags
func setupLogging(ro *opts.RootOpts) {
	if ro.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
