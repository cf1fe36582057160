// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CurrentWeather is the decoded current-conditions response for a city.
type CurrentWeather struct {
	City        string  `json:"city" yaml:"city"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Condition   string  `json:"condition" yaml:"condition"`
	Humidity    int     `json:"humidity" yaml:"humidity"`
}

// ForecastEntry is one 3-hour forecast interval.
type ForecastEntry struct {
	Timestamp   string  `json:"timestamp" yaml:"timestamp"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Condition   string  `json:"condition" yaml:"condition"`
}

// WeatherRecord is one history entry: the city queried, when, and what
// came back. Appended to the history file after each successful lookup.
type WeatherRecord struct {
	City           string          `json:"city"`
	Timestamp      string          `json:"timestamp"`
	CurrentWeather CurrentWeather  `json:"current_weather"`
	Forecast       []ForecastEntry `json:"forecast"`
}
