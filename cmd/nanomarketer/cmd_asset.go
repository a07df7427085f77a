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

var assetFlags struct {
	projectID string
	assetID   int
	ratio     string
	model     string
}

var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "Operate on single assets of a saved project",
}

var assetRefineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Re-derive one asset's prompt under a new aspect ratio",
	Long: `Rewrites a single asset's generation prompt to fit a new aspect ratio
while keeping its creative intent. Only prompt, description, and aspect
ratio change; id, title, and phase are preserved. The project is updated
in place.`,
	RunE: runAssetRefine,
}

func runAssetRefine(cmd *cobra.Command, args []string) error {
	ratio := types.AspectRatio(assetFlags.ratio)
	valid := false
	for _, r := range types.AspectRatios {
		if r == ratio {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unsupported aspect ratio %q (supported: %v)", assetFlags.ratio, types.AspectRatios)
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("no API key configured; run 'nanomarketer config set-key' or set GEMINI_API_KEY")
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	projectID := assetFlags.projectID
	if projectID == "" {
		id, ok, err := db.GetSetting("last_project")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no project given and no campaign generated yet; pass --project")
		}
		projectID = id
	}

	project, err := db.GetProject(projectID)
	if err != nil {
		return err
	}

	idx := -1
	for i, a := range project.Plan.Assets {
		if a.ID == assetFlags.assetID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("asset %d not found in project %s", assetFlags.assetID, project.ID)
	}

	model := assetFlags.model
	if model == "" {
		model = cfg.Model
	}
	if model == "" {
		model = catalog.GlobalFallback
	}

	client := gemini.NewClient(cfg.GeminiAPIKey)
	p := planner.New(client)

	logger.Info("refining asset",
		zap.String("project", project.ID),
		zap.Int("asset", assetFlags.assetID),
		zap.String("ratio", assetFlags.ratio))

	refined, err := p.RegenerateAsset(cmd.Context(), project.Plan.Assets[idx], project.Inputs, ratio, model)
	if err != nil {
		return err
	}

	project.Plan.Assets[idx] = refined
	if err := db.UpdateProjectPlan(project.ID, project.Plan); err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(refined)
}

func init() {
	assetRefineCmd.Flags().StringVarP(&assetFlags.projectID, "project", "p", "", "saved project id (default: most recent campaign)")
	assetRefineCmd.Flags().IntVarP(&assetFlags.assetID, "asset", "a", 0, "asset id 0-13 (required)")
	assetRefineCmd.Flags().StringVarP(&assetFlags.ratio, "ratio", "r", "", "new aspect ratio, e.g. 4:5 (required)")
	assetRefineCmd.Flags().StringVarP(&assetFlags.model, "model", "m", "", "preferred model (default: detected model)")
	_ = assetRefineCmd.MarkFlagRequired("asset")
	_ = assetRefineCmd.MarkFlagRequired("ratio")

	assetCmd.AddCommand(assetRefineCmd)
}
