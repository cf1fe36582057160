// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package weather fetches current conditions and 3-hour forecasts from an
// OpenWeatherMap-shaped API and keeps a JSON history of past lookups.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Krisha434/dockit/internal/httputil"
	"github.com/Krisha434/dockit/pkg/types"
)

const (
	defaultBaseURL     = "https://api.openweathermap.org/data/2.5/weather"
	defaultForecastURL = "https://api.openweathermap.org/data/2.5/forecast"
	defaultUnits       = "metric"

	// DefaultIntervals is the number of 3-hour forecast entries shown
	// when the caller does not choose one. The API caps requests at 40.
	DefaultIntervals = 8
	MaxIntervals     = 40
)

// Client queries the weather API.
type Client struct {
	http        *http.Client
	baseURL     string
	forecastURL string
	apiKey      string
	units       string
	userAgent   string
}

// NewClient builds a weather client from config. The API key is required;
// everything else has defaults.
func NewClient(cfg types.WeatherConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("weather API key is not set")
	}

	c := &Client{
		http:        httputil.NewClient(cfg.Timeout),
		baseURL:     cfg.BaseURL,
		forecastURL: cfg.ForecastURL,
		apiKey:      cfg.APIKey,
		units:       cfg.Units,
		userAgent:   cfg.UserAgent,
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.forecastURL == "" {
		c.forecastURL = defaultForecastURL
	}
	if c.units == "" {
		c.units = defaultUnits
	}
	if c.userAgent == "" {
		c.userAgent = httputil.DefaultUserAgent
	}
	return c, nil
}

// conditions covers the fields shared by the current-conditions and
// forecast payloads.
type conditions struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

type currentResponse struct {
	Name string `json:"name"`
	conditions
}

type forecastResponse struct {
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	List []struct {
		DT int64 `json:"dt"`
		conditions
	} `json:"list"`
}

// Current fetches current conditions for a city.
func (c *Client) Current(ctx context.Context, city string) (types.CurrentWeather, error) {
	var cr currentResponse
	if err := c.get(ctx, c.baseURL, city, &cr); err != nil {
		return types.CurrentWeather{}, fmt.Errorf("fetching weather for %q: %w", city, err)
	}

	cw := types.CurrentWeather{
		City:        cr.Name,
		Temperature: cr.Main.Temp,
		Humidity:    cr.Main.Humidity,
	}
	if len(cr.Weather) > 0 {
		cw.Condition = cr.Weather[0].Description
	}
	return cw, nil
}

// Forecast fetches up to intervals 3-hour forecast entries for a city.
// Out-of-range interval counts fall back to DefaultIntervals.
func (c *Client) Forecast(ctx context.Context, city string, intervals int) ([]types.ForecastEntry, error) {
	if intervals < 1 || intervals > MaxIntervals {
		intervals = DefaultIntervals
	}

	var fr forecastResponse
	if err := c.get(ctx, c.forecastURL, city, &fr); err != nil {
		return nil, fmt.Errorf("fetching forecast for %q: %w", city, err)
	}

	if len(fr.List) > intervals {
		fr.List = fr.List[:intervals]
	}
	entries := make([]types.ForecastEntry, 0, len(fr.List))
	for _, item := range fr.List {
		e := types.ForecastEntry{
			Timestamp:   time.Unix(item.DT, 0).Format("2006-01-02 15:04"),
			Temperature: item.Main.Temp,
		}
		if len(item.Weather) > 0 {
			e.Condition = item.Weather[0].Description
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (c *Client) get(ctx context.Context, endpoint, city string, out any) error {
	params := url.Values{
		"q":     {city},
		"appid": {c.apiKey},
		"units": {c.units},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := httputil.Do(ctx, c.http, req, 0)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather API returned HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing weather response: %w", err)
	}
	return nil
}
