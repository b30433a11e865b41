package server

import (
	"errors"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// parsePageQuery extracts page/limit query parameters. Missing or malformed
// values fall back to the defaults rather than erroring.
func parsePageQuery(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", defaultPage)
	if page < 1 {
		page = defaultPage
	}
	limit = c.QueryInt("limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// parseID extracts a route parameter by name as a positive uint. On failure
// it writes a 400 JSON response and returns errResponseWritten; callers
// should check: if err != nil { return nil }.
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// respondData writes the success envelope with a data payload.
func respondData(c *fiber.Ctx, status int, data fiber.Map) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// respondMessage writes the success envelope with a message and optional data.
func respondMessage(c *fiber.Ctx, status int, message string, data fiber.Map) error {
	body := fiber.Map{
		"status":  "success",
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

// respondPaginated writes the success envelope for list endpoints: a result
// count, pagination metadata, and the named collection under data.
func respondPaginated(c *fiber.Ctx, results int, pagination models.Pagination, data fiber.Map) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":     "success",
		"results":    results,
		"pagination": pagination,
		"data":       data,
	})
}
