package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// LinkCheckConfig holds settings for link validation.
type LinkCheckConfig struct {
	HTTPConfig `yaml:",inline"`

	// Concurrency bounds the number of in-flight lookups (default 8).
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// TaskStoreConfig holds settings for the task store.
type TaskStoreConfig struct {
	// DBPath is the SQLite database file (default "dockit.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}

// IndexConfig holds settings for the document index.
type IndexConfig struct {
	// DBPath is the SQLite database file (default "index.db").
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// WeatherConfig holds settings for the weather client.
type WeatherConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the current-conditions endpoint.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// ForecastURL is the 5-day/3-hour forecast endpoint.
	ForecastURL string `json:"forecast_url" yaml:"forecast_url"`

	// APIKey authenticates requests. Loaded from the environment or
	// .secrets/, never from the config file on disk.
	APIKey string `json:"-" yaml:"-"`

	// Units is the measurement system sent to the API (default "metric").
	Units string `json:"units" yaml:"units"`

	// HistoryFile is where query history is appended (default "history.json").
	HistoryFile string `json:"history_file" yaml:"history_file"`
}

// Config groups all stage configurations.
type Config struct {
	LinkCheck LinkCheckConfig `json:"link_check" yaml:"link_check"`
	Tasks     TaskStoreConfig `json:"tasks" yaml:"tasks"`
	Index     IndexConfig     `json:"index" yaml:"index"`
	Weather   WeatherConfig   `json:"weather" yaml:"weather"`
}
