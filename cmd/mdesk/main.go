// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mdesk CLI: a desktop front-end for
// converting Markdown files into page-formatted DOCX documents through the
// external md2docx converter. The serve command hosts the interactive UI;
// convert, presets, and history expose the same core on the command line.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mdesk/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the mdesk CLI.
var rootCmd = &cobra.Command{
	Use:   "mdesk",
	Short: "Convert Markdown files to formatted DOCX documents",
	Long: `mdesk is a front-end for the md2docx converter. It selects a Markdown
source file, collects document formatting settings (font, spacing, margins,
indentation), and hands both to the converter process.

Run "mdesk serve" for the interactive UI, or "mdesk convert" for one-shot
conversions. Formatting presets and the conversion history have their own
subcommands.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mdesk.yaml or ~/.config/mdesk/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mdesk")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mdesk"))
		}
	}

	viper.SetEnvPrefix("MDESK")
	viper.AutomaticEnv()

	viper.SetDefault("server.addr", "127.0.0.1:8423")
	viper.SetDefault("server.open_browser", true)
	viper.SetDefault("converter.command", "")
	viper.SetDefault("converter.python", "python3")
	viper.SetDefault("data_dir", defaultDataDir())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// defaultDataDir is where the history database and presets live unless the
// configuration says otherwise.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mdesk"
	}
	return filepath.Join(home, ".mdesk")
}

// loadConfig assembles the effective configuration from viper.
func loadConfig() types.AppConfig {
	return types.AppConfig{
		Server: types.ServerConfig{
			Addr:        viper.GetString("server.addr"),
			OpenBrowser: viper.GetBool("server.open_browser"),
		},
		Converter: types.ConverterConfig{
			Command: viper.GetString("converter.command"),
			Python:  viper.GetString("converter.python"),
		},
		DataDir: viper.GetString("data_dir"),
	}
}

// presetsDir is the presets directory under the data directory.
func presetsDir(cfg types.AppConfig) string {
	return filepath.Join(cfg.DataDir, "presets")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
