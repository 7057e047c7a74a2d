package cmd

import (
	"fmt"
	"os"

	"kml-smoke/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var noFail bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "kml-smoke",
	Short: "Smoke tests for the KML elevation profile app",
	Long: `kml-smoke checks that the KML backend (route listing and elevation profiles)
and the frontend are up and answering with the expected payloads.

Run without a subcommand to execute the full suite.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuite(cmd, true, true)
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps, regardless of the configured logger
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&noFail, "no-fail", false, "Exit 0 even when checks fail")
}
