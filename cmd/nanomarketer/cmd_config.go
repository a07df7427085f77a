package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nanomarketer/internal/catalog"
	"nanomarketer/internal/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage credential and preferences",
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key [api-key]",
	Short: "Store the Gemini API key",
	Long: `Stores the Gemini API key in .nanomarketer/config.json. Changing the
key clears the cached model identifier; run 'nanomarketer models detect'
afterwards to pick a working model for the new key.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig()
		if err != nil {
			return err
		}
		hadModel := cfg.Model != ""
		cfg.SetAPIKey(args[0])
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Println("API key saved.")
		if hadModel && cfg.Model == "" {
			fmt.Println("Cached model cleared; run 'nanomarketer models detect'.")
		}
		return nil
	},
}

var configSetModelCmd = &cobra.Command{
	Use:   "set-model [model-id]",
	Short: "Pin a preferred model from the supported list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !catalog.IsSupported(args[0]) {
			return fmt.Errorf("unknown model %q; see 'nanomarketer models list'", args[0])
		}
		cfg, path, err := loadConfig()
		if err != nil {
			return err
		}
		cfg.Model = args[0]
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Printf("Preferred model set to %s\n", args[0])
		return nil
	},
}

var configSetLangCmd = &cobra.Command{
	Use:   "set-lang [ar|en]",
	Short: "Set the design-text language",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang := types.Language(args[0])
		if lang != types.LanguageArabic && lang != types.LanguageEnglish {
			return fmt.Errorf("unsupported language %q (supported: ar, en)", args[0])
		}
		cfg, path, err := loadConfig()
		if err != nil {
			return err
		}
		cfg.Language = lang
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Printf("Design-text language set to %s\n", lang)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configSetModelCmd)
	configCmd.AddCommand(configSetLangCmd)
}
