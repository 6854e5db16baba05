package model

// ForecastDay is a single day of forecast with temperatures rounded to
// whole degrees.
type ForecastDay struct {
	Date        string
	MinTemp     int
	MaxTemp     int
	Description string
}

// WeatherSnapshot holds normalized current conditions plus a short-range
// forecast for one city.
type WeatherSnapshot struct {
	Temperature int
	FeelsLike   int
	Humidity    int
	WindSpeed   float64
	Description string
	Forecast    []ForecastDay
}

// CityWeather pairs a persisted city with its live weather. A nil Snapshot
// marks a degraded record: the provider call failed and the listing carries
// placeholder weather instead.
type CityWeather struct {
	City     City
	Snapshot *WeatherSnapshot
}

// CityOverview is the aggregated listing: Cities is the full ordered list,
// Favorites the ordered subset with Favorite set.
type CityOverview struct {
	Favorites []CityWeather
	Cities    []CityWeather
}
