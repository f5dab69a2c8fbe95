package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/brickfield/internal/config"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the built-in default configuration, ready to be copied to
~/.brickfield/configs/brickfield.yaml and edited.

With --effective, prints the configuration a game would use after the
config file search and the --difficulty preset are applied.

Examples:
  brickfield config > ~/.brickfield/configs/brickfield.yaml
  brickfield config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Print the resolved configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigEffective {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	out, err := effectiveConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}

// effectiveConfig loads the config the way the game does and renders it
// as YAML. Unlike the game, a broken config file is an error here.
func effectiveConfig(path, difficulty string) ([]byte, error) {
	cfg, err := config.LoadBrickfield(path)
	if err != nil {
		return nil, err
	}
	if preset := config.ParsePreset(difficulty); preset != "" {
		config.ApplyBrickfieldPreset(&cfg, preset)
	} else if difficulty != "" {
		return nil, fmt.Errorf("unknown difficulty %q", difficulty)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return out, nil
}
