package dto

import "time"

// CreateCityRequest describes the add-city payload.
type CreateCityRequest struct {
	CityName string `json:"cityName"`
	Country  string `json:"country,omitempty"`
}

// CityResponse is a persisted city record.
type CityResponse struct {
	ID         string    `json:"id"`
	CityName   string    `json:"cityName"`
	Country    string    `json:"country,omitempty"`
	IsFavorite bool      `json:"isFavorite"`
	AddedAt    time.Time `json:"addedAt"`
}

// ForecastDayResponse is one day of forecast.
type ForecastDayResponse struct {
	Date        string `json:"date"`
	MinTemp     int    `json:"minTemp"`
	MaxTemp     int    `json:"maxTemp"`
	Description string `json:"description"`
}

// CityWeatherResponse merges a city record with live weather. Degraded
// records carry a null temperature, the "unavailable" description and an
// empty forecast.
type CityWeatherResponse struct {
	ID          string                `json:"id"`
	CityName    string                `json:"cityName"`
	Country     string                `json:"country,omitempty"`
	IsFavorite  bool                  `json:"isFavorite"`
	Temperature *int                  `json:"temperature"`
	FeelsLike   *int                  `json:"feelsLike"`
	Humidity    *int                  `json:"humidity"`
	WindSpeed   *float64              `json:"windSpeed"`
	Description string                `json:"description"`
	Forecast    []ForecastDayResponse `json:"forecast"`
}

// OverviewResponse is the aggregated city listing.
type OverviewResponse struct {
	Favorites []CityWeatherResponse `json:"favorites"`
	Cities    []CityWeatherResponse `json:"cities"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
