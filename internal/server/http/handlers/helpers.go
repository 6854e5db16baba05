package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tidespring/breeze/internal/domain/model"
	"github.com/tidespring/breeze/internal/server/http/dto"
	"github.com/tidespring/breeze/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, dto.ErrorResponse{Code: code, Message: message})
}

func toCityResponse(city model.City) dto.CityResponse {
	return dto.CityResponse{
		ID:         city.ID.String(),
		CityName:   city.Name,
		Country:    city.Country,
		IsFavorite: city.Favorite,
		AddedAt:    city.AddedAt,
	}
}

const degradedDescription = "unavailable"

func toCityWeatherResponse(cw model.CityWeather) dto.CityWeatherResponse {
	resp := dto.CityWeatherResponse{
		ID:          cw.City.ID.String(),
		CityName:    cw.City.Name,
		Country:     cw.City.Country,
		IsFavorite:  cw.City.Favorite,
		Description: degradedDescription,
		Forecast:    []dto.ForecastDayResponse{},
	}

	if cw.Snapshot == nil {
		return resp
	}

	snapshot := cw.Snapshot
	resp.Temperature = &snapshot.Temperature
	resp.FeelsLike = &snapshot.FeelsLike
	resp.Humidity = &snapshot.Humidity
	resp.WindSpeed = &snapshot.WindSpeed
	resp.Description = snapshot.Description
	for _, day := range snapshot.Forecast {
		resp.Forecast = append(resp.Forecast, dto.ForecastDayResponse{
			Date:        day.Date,
			MinTemp:     day.MinTemp,
			MaxTemp:     day.MaxTemp,
			Description: day.Description,
		})
	}
	return resp
}
