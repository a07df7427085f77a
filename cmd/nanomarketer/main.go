package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"nanomarketer/internal/config"
	"nanomarketer/internal/logging"
	"nanomarketer/internal/store"
)

var (
	// Global flags
	verbose   bool
	workspace string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nanomarketer",
	Short: "Nano Marketer - AI marketing campaign prompt generator",
	Long: `Nano Marketer turns a product name and description into a complete
14-asset marketing campaign: structured image-generation prompts for
logo, packaging, mockups, social posts, and more, with automatic
audience/style inference and bilingual (Arabic/English) text rendering.

Prompts are produced by a Gemini model selected automatically from a
priority list with per-model fallback.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if err := logging.Initialize(workspace); err != nil {
			logger.Warn("file logging unavailable", zap.Error(err))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Close()
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// loadConfig reads the workspace config (with GEMINI_API_KEY env fallback).
func loadConfig() (*config.Config, string, error) {
	path := config.DefaultPath(workspace)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// openStore opens the workspace project/settings database.
func openStore() (*store.Store, error) {
	return store.Open(filepath.Join(workspace, ".nanomarketer", "projects.db"))
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", ".", "workspace directory holding .nanomarketer/")

	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(campaignCmd)
	rootCmd.AddCommand(assetCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
