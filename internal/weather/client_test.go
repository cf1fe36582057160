// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Krisha434/dockit/pkg/types"
)

const currentPayload = `{
	"name": "Berlin",
	"main": {"temp": 21.5, "humidity": 60},
	"weather": [{"description": "scattered clouds"}]
}`

const forecastPayload = `{
	"city": {"name": "Berlin"},
	"list": [
		{"dt": 1756200000, "main": {"temp": 20.0, "humidity": 55}, "weather": [{"description": "clear sky"}]},
		{"dt": 1756210800, "main": {"temp": 18.5, "humidity": 62}, "weather": [{"description": "light rain"}]},
		{"dt": 1756221600, "main": {"temp": 17.0, "humidity": 70}, "weather": [{"description": "rain"}]}
	]
}`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := NewClient(types.WeatherConfig{
		BaseURL:     ts.URL + "/weather",
		ForecastURL: ts.URL + "/forecast",
		APIKey:      "test-key",
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(types.WeatherConfig{})
	assert.Error(t, err)
}

func TestCurrent(t *testing.T) {
	var gotQuery map[string]string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"q":     r.URL.Query().Get("q"),
			"appid": r.URL.Query().Get("appid"),
			"units": r.URL.Query().Get("units"),
		}
		w.Write([]byte(currentPayload))
	})

	cw, err := client.Current(context.Background(), "Berlin")
	require.NoError(t, err)

	assert.Equal(t, "Berlin", cw.City)
	assert.Equal(t, 21.5, cw.Temperature)
	assert.Equal(t, "scattered clouds", cw.Condition)
	assert.Equal(t, 60, cw.Humidity)

	assert.Equal(t, "Berlin", gotQuery["q"])
	assert.Equal(t, "test-key", gotQuery["appid"])
	assert.Equal(t, "metric", gotQuery["units"])
}

func TestCurrent_NonOKStatus(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Current(context.Background(), "Berlin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 401")
}

func TestForecast(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/forecast"))
		w.Write([]byte(forecastPayload))
	})

	entries, err := client.Forecast(context.Background(), "Berlin", 2)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, 20.0, entries[0].Temperature)
	assert.Equal(t, "clear sky", entries[0].Condition)
	assert.NotEmpty(t, entries[0].Timestamp)
}

func TestForecast_OutOfRangeIntervalsUsesDefault(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(forecastPayload))
	})

	// Payload only has 3 entries, so the default of 8 returns all of them.
	entries, err := client.Forecast(context.Background(), "Berlin", 99)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	var warnings strings.Builder

	rec := types.WeatherRecord{
		City:      "Berlin",
		Timestamp: "2026-08-26 12:00:00",
		CurrentWeather: types.CurrentWeather{
			City: "Berlin", Temperature: 21.5, Condition: "scattered clouds", Humidity: 60,
		},
	}
	require.NoError(t, AppendHistory(path, rec, &warnings))
	require.NoError(t, AppendHistory(path, rec, &warnings))

	history := LoadHistory(path, &warnings)
	require.Len(t, history, 2)
	assert.Equal(t, "Berlin", history[0].City)
	assert.Empty(t, warnings.String())
}

func TestLoadHistory_MissingFile(t *testing.T) {
	var warnings strings.Builder
	history := LoadHistory(filepath.Join(t.TempDir(), "absent.json"), &warnings)
	assert.Empty(t, history)
	assert.Empty(t, warnings.String())
}

func TestLoadHistory_CorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var warnings strings.Builder
	history := LoadHistory(path, &warnings)
	assert.Empty(t, history)
	assert.Contains(t, warnings.String(), "starting fresh")
}
