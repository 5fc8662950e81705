package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/hungry-chameleon/internal/config"
)

var (
	flagValidate  string
	flagEffective bool
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print or validate a game config",
	Long: `Print the default config for a game (default: chameleon), check a
config file against the schema, or show the rules a game would use.

Config files are searched in this order:
  --config path
  ~/.arcade/configs/chameleon.yaml
  ./configs/chameleon.yaml
  built-in defaults

Examples:
  arcade config > ~/.arcade/configs/chameleon.yaml
  arcade config --validate ./my-chameleon.yaml
  arcade config --effective --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagValidate, "validate", "", "Validate this config file and exit")
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved config after search order and difficulty")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML (with --effective)")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset (with --effective)")
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	switch {
	case flagValidate != "":
		data, err := os.ReadFile(flagValidate)
		if err != nil {
			return err
		}
		cfg, err := config.ParseChameleon(data)
		if err != nil {
			return fmt.Errorf("%s: %w", flagValidate, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%dx%d field, %d flies)\n",
			flagValidate, int(cfg.Playfield.Width), int(cfg.Playfield.Height), cfg.Flies.Count)
		return nil

	case flagEffective:
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		cfg, err := config.LoadChameleon(flagConfig)
		if err != nil {
			return err
		}
		config.ApplyChameleonPreset(&cfg, preset)

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(cfg)
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("game %q has no config", gameID)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
