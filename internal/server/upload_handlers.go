package server

import (
	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// parseUpload pulls the uploaded image out of the multipart form field
// "image". On failure it writes a 400 response and returns errResponseWritten.
func (s *Server) parseUpload(c *fiber.Ctx) (service.UploadAssetInput, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
		return service.UploadAssetInput{}, errResponseWritten
	}

	file, err := fileHeader.Open()
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Could not read uploaded file"))
		return service.UploadAssetInput{}, errResponseWritten
	}

	return service.UploadAssetInput{
		UserID:      middleware.CurrentUserID(c),
		Filename:    fileHeader.Filename,
		Reader:      file,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}, nil
}

// UploadProfilePicture handles POST /api/users/profile-picture
func (s *Server) UploadProfilePicture(c *fiber.Ctx) error {
	in, err := s.parseUpload(c)
	if err != nil {
		return nil
	}

	user, err := s.userService.UploadProfilePicture(c.UserContext(), in)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Profile picture updated successfully", fiber.Map{"user": user})
}

// DeleteProfilePicture handles DELETE /api/users/profile-picture
func (s *Server) DeleteProfilePicture(c *fiber.Ctx) error {
	user, err := s.userService.DeleteProfilePicture(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Profile picture deleted successfully", fiber.Map{"user": user})
}

// UploadCoverPhoto handles POST /api/users/cover-photo
func (s *Server) UploadCoverPhoto(c *fiber.Ctx) error {
	in, err := s.parseUpload(c)
	if err != nil {
		return nil
	}

	user, err := s.userService.UploadCoverPhoto(c.UserContext(), in)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Cover photo updated successfully", fiber.Map{"user": user})
}

// DeleteCoverPhoto handles DELETE /api/users/cover-photo
func (s *Server) DeleteCoverPhoto(c *fiber.Ctx) error {
	user, err := s.userService.DeleteCoverPhoto(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Cover photo deleted successfully", fiber.Map{"user": user})
}
