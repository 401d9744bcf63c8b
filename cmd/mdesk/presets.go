// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mdesk/internal/preset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage saved formatting presets",
	Long: `Presets are named DocumentSettings snapshots stored as YAML files in the
data directory. Apply one to a conversion with "mdesk convert --preset".`,
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := preset.NewStore(presetsDir(loadConfig()))
		names, err := store.List()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No presets saved.")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var presetsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a preset's settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := preset.NewStore(presetsDir(loadConfig()))
		settings, err := store.Load(args[0])
		if err != nil {
			return err
		}
		return yaml.NewEncoder(os.Stdout).Encode(settings)
	},
}

var presetsSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a preset from the defaults plus --set overrides",
	Long: `Save stores a preset built from the converter defaults, an optional base
preset (--preset), and --set field=value overrides.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := preset.NewStore(presetsDir(loadConfig()))
		settings, err := resolveSettings(cmd, store)
		if err != nil {
			return err
		}
		if err := store.Save(args[0], settings); err != nil {
			return err
		}
		fmt.Printf("Saved preset %s\n", args[0])
		return nil
	},
}

func init() {
	presetsSaveCmd.Flags().String("preset", "", "base preset to start from")
	presetsSaveCmd.Flags().StringArray("set", nil, "override one settings field, e.g. --set fontSize=12 (repeatable)")

	presetsCmd.AddCommand(presetsListCmd, presetsShowCmd, presetsSaveCmd)
	rootCmd.AddCommand(presetsCmd)
}
