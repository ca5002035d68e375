package main

import (
	"fmt"
	"os"

	"FitCoach_V0.1/internal/config"
	"FitCoach_V0.1/internal/utility"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "fitcoach",
	Short: "fitcoach generates personalised workout and diet plans from your terminal",
	Long:  "fitcoach runs the same plan pipeline as the API: it calls the configured completion service once and falls back to the baseline plan on any failure.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		utility.SetupLogger(cfg.LogLevel, cfg.LogPretty)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
