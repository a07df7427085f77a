package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nanomarketer/internal/catalog"
	"nanomarketer/internal/gemini"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List and auto-detect Gemini models",
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the supported models",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		for _, m := range catalog.SupportedModels {
			marker := "  "
			if m.ID == cfg.Model {
				marker = "* "
			}
			fmt.Printf("%s%-24s %s\n", marker, m.ID, m.Name)
		}
		return nil
	},
}

var modelsDetectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Probe the priority list and save the first working model",
	Long: `Walks the model priority list issuing a minimal generation call per
candidate and stores the first identifier that works with the configured
API key. Run this once after setting a new key.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.GeminiAPIKey == "" {
			return fmt.Errorf("no API key configured; run 'nanomarketer config set-key' or set GEMINI_API_KEY")
		}

		client := gemini.NewClient(cfg.GeminiAPIKey)
		logger.Info("probing models", zap.Int("candidates", len(catalog.PriorityModels)))

		model, err := gemini.DetectBestModel(cmd.Context(), client)
		if err != nil {
			return err
		}

		cfg.Model = model
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Printf("Auto-detected working model: %s\n", model)
		return nil
	},
}

func init() {
	modelsCmd.AddCommand(modelsListCmd)
	modelsCmd.AddCommand(modelsDetectCmd)
}
