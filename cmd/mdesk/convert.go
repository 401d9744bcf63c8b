// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdesk/internal/bridge"
	"github.com/pdiddy/mdesk/internal/history"
	"github.com/pdiddy/mdesk/internal/orchestrator"
	"github.com/pdiddy/mdesk/internal/preset"
	"github.com/pdiddy/mdesk/internal/selector"
	"github.com/pdiddy/mdesk/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.md>",
	Short: "Convert one Markdown file to DOCX",
	Long: `Convert renders a Markdown file into a DOCX document next to the source
file (same base name, .docx extension). Formatting starts from the converter
defaults; apply a saved preset with --preset and override single fields with
--set field=value.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("preset", "", "apply a saved formatting preset")
	convertCmd.Flags().StringArray("set", nil, "override one settings field, e.g. --set fontSize=12 (repeatable)")
	convertCmd.Flags().Bool("open", false, "open the document when conversion succeeds")

	rootCmd.AddCommand(convertCmd)
}

// resolveSettings builds the effective settings from the defaults, an
// optional preset, and --set overrides, then validates the result.
func resolveSettings(cmd *cobra.Command, presets *preset.Store) (types.DocumentSettings, error) {
	settings := types.DefaultSettings()

	if name, _ := cmd.Flags().GetString("preset"); name != "" {
		loaded, err := presets.Load(name)
		if err != nil {
			return settings, err
		}
		settings = loaded
	}

	pairs, _ := cmd.Flags().GetStringArray("set")
	for _, pair := range pairs {
		field, value, ok := strings.Cut(pair, "=")
		if !ok {
			return settings, fmt.Errorf("malformed --set %q, want field=value", pair)
		}
		updated, err := settings.With(field, value)
		if err != nil {
			return settings, err
		}
		settings = updated
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	sel := selector.New()
	file, err := sel.Select(args[0])
	if err != nil {
		return err
	}

	settings, err := resolveSettings(cmd, preset.NewStore(presetsDir(cfg)))
	if err != nil {
		return err
	}

	conv, err := bridge.DetectConverter(cfg.Converter)
	if err != nil {
		return err
	}

	orch := orchestrator.New(conv)
	if store, err := history.NewStore(cfg.DataDir); err != nil {
		fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
	} else {
		defer store.Close()
		orch.WithRecorder(store)
	}

	state, err := orch.Convert(cmd.Context(), &file, settings)
	if err != nil {
		return err
	}
	if state.Phase == types.PhaseFailed {
		return fmt.Errorf("conversion failed: %s", state.Message)
	}

	fmt.Printf("Converted %s to %s\n", file.Name, state.OutputPath)

	if open, _ := cmd.Flags().GetBool("open"); open {
		if err := bridge.NewHostActions().OpenFile(state.OutputPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open document: %v\n", err)
		}
	}
	return nil
}
