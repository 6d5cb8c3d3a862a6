package server

import (
	"strconv"
	"time"

	"atmos/internal/models"
	"atmos/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetWeather handles GET /weather?lat&lon. Weather and air quality come back
// in one payload; a failed air-quality lookup yields "N/A", never an error.
func (s *Server) GetWeather(c *fiber.Ctx) error {
	lat, lon, err := s.parseCoords(c)
	if err != nil {
		return nil
	}

	snapshot, err := s.weatherService.CurrentConditions(c.Context(), lat, lon)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(snapshot)
}

// SaveWeather handles POST /weather. Fetches current conditions for the given
// coordinates and stores them, optionally attributed to a user.
func (s *Server) SaveWeather(c *fiber.Ctx) error {
	var req struct {
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
		UserID *uint   `json:"userId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Lat < -90 || req.Lat > 90 || req.Lon < -180 || req.Lon > 180 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Coordinates out of range"))
	}

	snapshot, err := s.weatherService.SaveLookup(c.Context(), req.UserID, req.Lat, req.Lon)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(snapshot)
}

// GetUserWeather handles GET /users/:id/weather. A missing user and a user
// with no saved lookups both yield 404, with different messages.
func (s *Server) GetUserWeather(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	records, err := s.weatherService.History(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(records)
}

// SaveUserWeather handles POST /users/:id/weather with a client-supplied record.
func (s *Server) SaveUserWeather(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		City      string                 `json:"city"`
		Latitude  float64                `json:"latitude"`
		Longitude float64                `json:"longitude"`
		Weather   models.WeatherSnapshot `json:"weather"`
		Timestamp time.Time              `json:"timestamp"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.City == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("city is required"))
	}
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Coordinates out of range"))
	}
	if req.Timestamp.IsZero() {
		req.Timestamp = time.Now().UTC()
	}

	record, err := s.weatherService.RecordLookup(c.Context(), id, service.RecordInput{
		City:      req.City,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Weather:   req.Weather,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(record)
}

// ClearWeather handles DELETE /weather. Succeeds on an empty collection.
func (s *Server) ClearWeather(c *fiber.Ctx) error {
	if err := s.weatherService.ClearHistory(c.Context()); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "All weather data deleted successfully"})
}

// GetTimezone handles GET /timezone?lat&lon&timestamp. The timestamp defaults
// to now; passing a historical one resolves the DST offset in effect then.
func (s *Server) GetTimezone(c *fiber.Ctx) error {
	lat, lon, err := s.parseCoords(c)
	if err != nil {
		return nil
	}

	timestamp := time.Now().Unix()
	if raw := c.Query("timestamp"); raw != "" {
		parsed, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid timestamp"))
		}
		timestamp = parsed
	}

	info, err := s.gateway.Timezone(c.Context(), lat, lon, timestamp)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(info)
}

// GetBackground handles GET /background?description
func (s *Server) GetBackground(c *fiber.Ctx) error {
	query := c.Query("description")
	if query == "" {
		query = "weather"
	}

	image, err := s.gateway.BackgroundImage(c.Context(), query)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(image)
}

// GeocodeCity handles GET /geocode?city
func (s *Server) GeocodeCity(c *fiber.Ctx) error {
	city := c.Query("city")
	if city == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("city query parameter is required"))
	}

	place, found, err := s.gateway.GeocodeCity(c.Context(), city)
	if err != nil {
		return fail(c, err)
	}
	if !found {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundMessage("City not found"))
	}
	return c.JSON(place)
}

// ReverseGeocode handles GET /geocode/reverse?lat&lon
func (s *Server) ReverseGeocode(c *fiber.Ctx) error {
	lat, lon, err := s.parseCoords(c)
	if err != nil {
		return nil
	}

	place, found, err := s.gateway.ReverseGeocode(c.Context(), lat, lon)
	if err != nil {
		return fail(c, err)
	}
	if !found {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundMessage("No place found for these coordinates"))
	}
	return c.JSON(place)
}
