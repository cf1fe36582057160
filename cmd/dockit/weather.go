// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Krisha434/dockit/internal/report"
	"github.com/Krisha434/dockit/internal/secrets"
	"github.com/Krisha434/dockit/internal/weather"
	"github.com/Krisha434/dockit/pkg/types"
)

var weatherCmd = &cobra.Command{
	Use:   "weather <city>",
	Short: "Show current weather and a short forecast for a city",
	Long: `Weather fetches current conditions and 3-hour forecast intervals for a
city and appends the result to a local history file. The API key is read
from the DOCKIT_API_KEY environment variable or .secrets/api-key.`,
	Args: cobra.ExactArgs(1),
	RunE: runWeather,
}

func runWeather(cmd *cobra.Command, args []string) error {
	city := args[0]
	intervals, _ := cmd.Flags().GetInt("intervals")
	noHistory, _ := cmd.Flags().GetBool("no-history")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg := loadConfig().Weather
	if cmd.Flags().Changed("units") || cfg.Units == "" {
		cfg.Units, _ = cmd.Flags().GetString("units")
	}
	if historyPath, _ := cmd.Flags().GetString("history"); historyPath != "" {
		cfg.HistoryFile = historyPath
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = "history.json"
	}

	cfg.APIKey = secrets.Lookup(secrets.DefaultDir, "api-key")
	if cfg.APIKey == "" {
		return fmt.Errorf("weather API key not found: set DOCKIT_API_KEY or create %s/api-key", secrets.DefaultDir)
	}

	client, err := weather.NewClient(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()

	current, err := client.Current(ctx, city)
	if err != nil {
		return err
	}

	// A forecast failure is a warning; the current conditions still print.
	forecast, err := client.Forecast(ctx, city, intervals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	record := types.WeatherRecord{
		City:           city,
		Timestamp:      time.Now().Format("2006-01-02 15:04:05"),
		CurrentWeather: current,
		Forecast:       forecast,
	}

	if jsonOutput {
		if err := report.WriteJSON(os.Stdout, record); err != nil {
			return err
		}
	} else {
		report.WriteWeather(os.Stdout, current, cfg.Units)
		if len(forecast) > 0 {
			fmt.Println()
			report.WriteForecast(os.Stdout, current.City, forecast, cfg.Units)
		}
	}

	if !noHistory {
		if err := weather.AppendHistory(cfg.HistoryFile, record, os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not save history: %v\n", err)
		}
	}
	return nil
}

func init() {
	weatherCmd.Flags().Int("intervals", weather.DefaultIntervals, "number of 3-hour forecast intervals (1-40)")
	weatherCmd.Flags().String("units", "metric", "measurement units: metric, imperial, or standard")
	weatherCmd.Flags().String("history", "", "query history file (default: weather.history_file from config, or history.json)")
	weatherCmd.Flags().Bool("no-history", false, "do not record this lookup in the history file")
	weatherCmd.Flags().Bool("json", false, "output the full record as JSON")

	rootCmd.AddCommand(weatherCmd)
}
