// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the dockit CLI: Markdown analysis,
// a SQLite task manager, a searchable document index, and weather lookups,
// each behind its own subcommand.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Krisha434/dockit/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the dockit CLI.
var rootCmd = &cobra.Command{
	Use:   "dockit",
	Short: "Analyze documents, manage tasks, search an index, check the weather",
	Long: `dockit bundles four small tools behind one CLI: a Markdown analyzer that
counts structure and validates links, a SQLite-backed task manager, a
document index with full-text search and similarity lookups, and a
weather client.

Each tool is a subcommand: analyze, task, index, and weather.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./dockit.yaml or ~/.config/dockit/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dockit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dockit"))
		}
	}

	viper.SetEnvPrefix("DOCKIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the stage configurations from whatever config file
// and environment viper resolved. Flags override these per command.
func loadConfig() types.Config {
	return types.Config{
		LinkCheck: types.LinkCheckConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("link_check.timeout"),
				UserAgent: viper.GetString("link_check.user_agent"),
			},
			Concurrency: viper.GetInt("link_check.concurrency"),
		},
		Tasks: types.TaskStoreConfig{
			DBPath: viper.GetString("tasks.db_path"),
		},
		Index: types.IndexConfig{
			DBPath:     viper.GetString("index.db_path"),
			MaxResults: viper.GetInt("index.max_results"),
		},
		Weather: types.WeatherConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout: viper.GetDuration("weather.timeout"),
			},
			BaseURL:     viper.GetString("weather.base_url"),
			ForecastURL: viper.GetString("weather.forecast_url"),
			Units:       viper.GetString("weather.units"),
			HistoryFile: viper.GetString("weather.history_file"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
