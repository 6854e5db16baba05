package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/tidespring/breeze/internal/domain/model"
)

// ErrProviderUnavailable marks any provider failure: network errors,
// non-200 responses, malformed payloads. Callers treat it as a degraded
// result, never as a fatal error.
var ErrProviderUnavailable = errors.New("weather provider unavailable")

const (
	currentPath  = "/data/2.5/weather"
	forecastPath = "/data/2.5/forecast"

	maxForecastDays = 5
)

// Client exposes operations to query the weather provider.
type Client interface {
	Fetch(ctx context.Context, name, country string) (*model.WeatherSnapshot, error)
}

// HTTPClient implements Client against an OpenWeatherMap-compatible API.
type HTTPClient struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// currentResponse mirrors the current-conditions JSON payload.
type currentResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// forecastResponse mirrors the 3-hourly forecast JSON payload.
type forecastResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			TempMin float64 `json:"temp_min"`
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

// NewHTTPClient creates HTTP weather client with default timeout.
func NewHTTPClient(baseURL, apiKey string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse weather url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("weather url must be absolute")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("weather api key must be provided")
	}
	return &HTTPClient{
		baseURL: parsed,
		apiKey:  apiKey,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Fetch queries current conditions and the short-range forecast for a city.
func (c *HTTPClient) Fetch(ctx context.Context, name, country string) (*model.WeatherSnapshot, error) {
	query := name
	if country != "" {
		query = name + "," + country
	}

	var current currentResponse
	if err := c.get(ctx, currentPath, query, &current); err != nil {
		return nil, err
	}

	snapshot := &model.WeatherSnapshot{
		Temperature: roundTemp(current.Main.Temp),
		FeelsLike:   roundTemp(current.Main.FeelsLike),
		Humidity:    current.Main.Humidity,
		WindSpeed:   current.Wind.Speed,
	}
	if len(current.Weather) > 0 {
		snapshot.Description = current.Weather[0].Description
	}

	var forecast forecastResponse
	if err := c.get(ctx, forecastPath, query, &forecast); err != nil {
		return nil, err
	}
	snapshot.Forecast = buildForecast(forecast, time.Now().UTC().Format("2006-01-02"))

	return snapshot, nil
}

func (c *HTTPClient) get(ctx context.Context, apiPath, query string, out any) error {
	endpoint := *c.baseURL
	endpoint.Path = apiPath
	values := url.Values{}
	values.Set("q", query)
	values.Set("units", "metric")
	values.Set("appid", c.apiKey)
	endpoint.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("weather request failed",
			slog.String("path", apiPath),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return fmt.Errorf("%w: status %s", ErrProviderUnavailable, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return nil
}

// buildForecast folds 3-hourly entries into per-day aggregates, skipping
// entries for today and keeping at most maxForecastDays days in upstream
// order.
func buildForecast(data forecastResponse, today string) []model.ForecastDay {
	type dayAgg struct {
		min, max    float64
		description string
	}

	var order []string
	days := make(map[string]*dayAgg)

	for _, entry := range data.List {
		if len(entry.DtTxt) < 10 {
			continue
		}
		date := entry.DtTxt[:10]
		if date == today {
			continue
		}

		agg, ok := days[date]
		if !ok {
			if len(order) == maxForecastDays {
				break
			}
			agg = &dayAgg{min: entry.Main.TempMin, max: entry.Main.TempMax}
			days[date] = agg
			order = append(order, date)
		} else {
			agg.min = math.Min(agg.min, entry.Main.TempMin)
			agg.max = math.Max(agg.max, entry.Main.TempMax)
		}

		// Midday entry describes the day best.
		midday := len(entry.DtTxt) >= 19 && entry.DtTxt[11:19] == "12:00:00"
		if len(entry.Weather) > 0 && (agg.description == "" || midday) {
			agg.description = entry.Weather[0].Description
		}
	}

	forecast := make([]model.ForecastDay, 0, len(order))
	for _, date := range order {
		agg := days[date]
		forecast = append(forecast, model.ForecastDay{
			Date:        date,
			MinTemp:     roundTemp(agg.min),
			MaxTemp:     roundTemp(agg.max),
			Description: agg.description,
		})
	}
	return forecast
}

func roundTemp(v float64) int {
	return int(math.Round(v))
}
