package server

import (
	"errors"
	"strconv"

	"atmos/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts the "id" route parameter as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parseCoords extracts lat and lon query parameters and checks their ranges.
// On failure it writes a 400 JSON response and returns errResponseWritten.
func (s *Server) parseCoords(c *fiber.Ctx) (lat, lon float64, err error) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Valid lat and lon query parameters are required"))
		return 0, 0, errResponseWritten
	}
	return lat, lon, nil
}

// statusFor maps an application error to its HTTP status code.
func statusFor(err error) int {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case "NOT_FOUND":
		return fiber.StatusNotFound
	case "VALIDATION_ERROR":
		return fiber.StatusBadRequest
	case "UNAUTHORIZED":
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// fail writes the error with the status derived from its taxonomy code.
func fail(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, statusFor(err), err)
}
