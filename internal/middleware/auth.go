package middleware

import (
	"context"
	"errors"

	"ripple/internal/auth"
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UserLoader loads the account behind a verified token. Satisfied by
// repository.UserRepository.
type UserLoader interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// AuthRequired builds the middleware guarding protected routes. It extracts
// the token (Authorization header first, then the session cookie), verifies
// it, loads the account, and rejects tokens for deleted or deactivated
// accounts. On success the request carries the caller's ID and user record.
func AuthRequired(authenticator *auth.Authenticator, users UserLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := auth.ExtractToken(c)
		if tokenString == "" {
			AuthRejections.WithLabelValues("missing_token").Inc()
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("You are not logged in! Please log in to get access."))
		}

		userID, err := authenticator.Verify(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				AuthRejections.WithLabelValues("expired_token").Inc()
				return models.RespondWithError(c, fiber.StatusUnauthorized,
					models.NewUnauthorizedError("Your token has expired! Please log in again."))
			}
			AuthRejections.WithLabelValues("invalid_token").Inc()
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token. Please log in again!"))
		}

		user, err := users.GetByID(c.UserContext(), userID)
		if err != nil {
			var appErr *models.AppError
			if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
				AuthRejections.WithLabelValues("unknown_user").Inc()
				return models.RespondWithError(c, fiber.StatusUnauthorized,
					models.NewUnauthorizedError("The user belonging to this token no longer exists."))
			}
			return models.RespondWithAppError(c, err)
		}
		if !user.IsActive {
			AuthRejections.WithLabelValues("inactive_user").Inc()
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("This account has been deactivated."))
		}

		c.Locals("userID", user.ID)
		c.Locals("user", user)
		c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, user.ID))

		return c.Next()
	}
}

// CurrentUserID returns the authenticated caller's ID set by AuthRequired.
func CurrentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}

// CurrentUser returns the authenticated caller set by AuthRequired.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
