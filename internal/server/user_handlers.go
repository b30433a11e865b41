package server

import (
	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers handles GET /api/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	page, limit := parsePageQuery(c)

	users, pagination, err := s.userService.ListUsers(c.UserContext(), service.ListUsersInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return respondPaginated(c, len(users), pagination, fiber.Map{"users": users})
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.UserContext(), userID, middleware.CurrentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return respondData(c, fiber.StatusOK, fiber.Map{"user": user})
}

// UpdateMyProfile handles PUT /api/users/profile (and the PATCH /api/users/me
// alias). Name changes require a
// non-empty value; bio, location, and website apply whenever the field is
// present, so clients can clear them with an explicit empty string.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Name     string  `json:"name"`
		Bio      *string `json:"bio"`
		Location *string `json:"location"`
		Website  *string `json:"website"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID:   middleware.CurrentUserID(c),
		Name:     req.Name,
		Bio:      req.Bio,
		Location: req.Location,
		Website:  req.Website,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return respondMessage(c, fiber.StatusOK, "Profile updated successfully", fiber.Map{"user": user})
}
