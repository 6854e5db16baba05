package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/tidespring/breeze/internal/domain/errors"
	"github.com/tidespring/breeze/internal/server/http/dto"
)

// CityHandler manages city endpoints.
type CityHandler struct {
	facade CityFacade
}

// NewCityHandler constructs CityHandler.
func NewCityHandler(facade CityFacade) *CityHandler {
	return &CityHandler{facade: facade}
}

// Add handles POST /cities.
func (h *CityHandler) Add(c *gin.Context) {
	ownerID := CurrentUserID(c)

	var req dto.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, dto.CodeInvalidRequest, "malformed request body")
		return
	}

	city, err := h.facade.AddCity(c.Request.Context(), ownerID, req.CityName, req.Country)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCityName):
			writeError(c, http.StatusBadRequest, dto.CodeInvalidRequest, "city name is not valid")
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			writeError(c, http.StatusBadRequest, dto.CodeDuplicateCity, "city is already tracked")
		default:
			writeError(c, http.StatusInternalServerError, dto.CodeInternal, "internal error")
		}
		return
	}

	c.JSON(http.StatusCreated, toCityResponse(*city))
}

// List handles GET /cities.
func (h *CityHandler) List(c *gin.Context) {
	ownerID := CurrentUserID(c)

	overview, err := h.facade.Overview(c.Request.Context(), ownerID)
	if err != nil {
		writeError(c, http.StatusInternalServerError, dto.CodeInternal, "internal error")
		return
	}

	response := dto.OverviewResponse{
		Favorites: make([]dto.CityWeatherResponse, 0, len(overview.Favorites)),
		Cities:    make([]dto.CityWeatherResponse, 0, len(overview.Cities)),
	}
	for _, cw := range overview.Favorites {
		response.Favorites = append(response.Favorites, toCityWeatherResponse(cw))
	}
	for _, cw := range overview.Cities {
		response.Cities = append(response.Cities, toCityWeatherResponse(cw))
	}

	c.JSON(http.StatusOK, response)
}

// Favorite handles PUT /cities/:id/favorite.
func (h *CityHandler) Favorite(c *gin.Context) {
	ownerID := CurrentUserID(c)

	cityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusNotFound, dto.CodeNotFound, "city not found")
		return
	}

	city, err := h.facade.ToggleFavorite(c.Request.Context(), ownerID, cityID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			writeError(c, http.StatusNotFound, dto.CodeNotFound, "city not found")
		default:
			writeError(c, http.StatusInternalServerError, dto.CodeInternal, "internal error")
		}
		return
	}

	c.JSON(http.StatusOK, toCityResponse(*city))
}

// Delete handles DELETE /cities/:id.
func (h *CityHandler) Delete(c *gin.Context) {
	ownerID := CurrentUserID(c)

	cityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusNotFound, dto.CodeNotFound, "city not found")
		return
	}

	if err := h.facade.RemoveCity(c.Request.Context(), ownerID, cityID); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			writeError(c, http.StatusNotFound, dto.CodeNotFound, "city not found")
		default:
			writeError(c, http.StatusInternalServerError, dto.CodeInternal, "internal error")
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "city deleted"})
}
