package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nanomarketer/internal/catalog"
	"nanomarketer/internal/gemini"
	"nanomarketer/internal/planner"
	"nanomarketer/internal/types"
)

var campaignFlags struct {
	name        string
	description string
	vibe        string
	textLang    string
	appLang     string
	model       string
	noSave      bool
}

var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Generate a full 14-asset campaign plan",
	Long: `Generates the complete prompt plan for a product: 14 image-generation
prompts (logo, packaging, mockups, social posts, certificate, banner)
plus the consistency guide. The plan is printed as JSON and saved as a
project unless --no-save is given.`,
	RunE: runCampaign,
}

func runCampaign(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("no API key configured; run 'nanomarketer config set-key' or set GEMINI_API_KEY")
	}

	inputs := types.CampaignInputs{
		ProductName: campaignFlags.name,
		Description: campaignFlags.description,
		BrandVibe:   campaignFlags.vibe,
		Language:    cfg.Language,
	}
	if campaignFlags.textLang != "" {
		inputs.Language = types.Language(campaignFlags.textLang)
	}
	appLang := inputs.Language
	if campaignFlags.appLang != "" {
		appLang = types.Language(campaignFlags.appLang)
	}

	model := campaignFlags.model
	if model == "" {
		model = cfg.Model
	}
	if model == "" {
		model = catalog.GlobalFallback
		logger.Info("no detected model configured, using global fallback",
			zap.String("model", model))
	}

	client := gemini.NewClient(cfg.GeminiAPIKey)
	p := planner.New(client)

	logger.Info("generating campaign plan",
		zap.String("product", inputs.ProductName),
		zap.String("model", model))

	plan, err := p.GeneratePlan(cmd.Context(), inputs, appLang, model)
	if err != nil {
		return err
	}

	if !campaignFlags.noSave {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()
		project, err := db.SaveProject(inputs, *plan)
		if err != nil {
			return err
		}
		if err := db.SetSetting("last_project", project.ID); err != nil {
			logger.Warn("could not record last project", zap.Error(err))
		}
		fmt.Fprintf(os.Stderr, "Saved project %s\n", project.ID)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

func init() {
	campaignCmd.Flags().StringVarP(&campaignFlags.name, "name", "n", "", "product name (required)")
	campaignCmd.Flags().StringVarP(&campaignFlags.description, "description", "d", "", "product description (required)")
	campaignCmd.Flags().StringVar(&campaignFlags.vibe, "vibe", "", "brand vibe/colors (optional, inferred when empty)")
	campaignCmd.Flags().StringVar(&campaignFlags.textLang, "text-lang", "", "design text language: ar or en (default from config)")
	campaignCmd.Flags().StringVar(&campaignFlags.appLang, "lang", "", "language for titles/descriptions: ar or en (default: text language)")
	campaignCmd.Flags().StringVarP(&campaignFlags.model, "model", "m", "", "preferred model (default: detected model)")
	campaignCmd.Flags().BoolVar(&campaignFlags.noSave, "no-save", false, "print the plan without saving a project")
	_ = campaignCmd.MarkFlagRequired("name")
	_ = campaignCmd.MarkFlagRequired("description")
}
