package cmd

import (
	"fmt"
	"log"

	"github.com/jdlms/tip-calculator/internal/app"
	"github.com/jdlms/tip-calculator/internal/config"
	"github.com/jdlms/tip-calculator/pkg/logging"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tip-calculator",
	Short: "Bill and tip splitter",
	Long:  "A terminal screen that splits a bill plus tip between contributors",
	RunE: func(cmd *cobra.Command, args []string) error {
		// This is the default behavior - start the TUI
		return startTUI()
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func startTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Log to a file so output does not interfere with the TUI
	logger, closeLog, err := logging.SetupFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	state, err := app.CreateApp(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("starting tip calculator", "theme", cfg.Theme, "slider_steps", cfg.SliderSteps)
	return state.App.Run()
}
