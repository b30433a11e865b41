package server

import (
	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/posts
func (s *Server) GetFeed(c *fiber.Ctx) error {
	page, limit := parsePageQuery(c)

	posts, pagination, err := s.postService.ListFeed(c.UserContext(), service.ListPostsInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return respondPaginated(c, len(posts), pagination, fiber.Map{"posts": posts})
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:  middleware.CurrentUserID(c),
		Content: req.Content,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return respondMessage(c, fiber.StatusCreated, "Post created successfully", fiber.Map{"post": post})
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return respondData(c, fiber.StatusOK, fiber.Map{"post": post})
}

// UpdatePost handles PUT/PATCH /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		UserID:  middleware.CurrentUserID(c),
		PostID:  postID,
		Content: req.Content,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return respondMessage(c, fiber.StatusOK, "Post updated successfully", fiber.Map{"post": post})
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), middleware.CurrentUserID(c), postID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return respondMessage(c, fiber.StatusOK, "Post deleted successfully", nil)
}

// ToggleLike handles POST /api/posts/:id/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, liked, err := s.postService.ToggleLike(c.UserContext(), middleware.CurrentUserID(c), postID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	message := "Post unliked"
	if liked {
		message = "Post liked"
	}
	return respondMessage(c, fiber.StatusOK, message, fiber.Map{"post": post})
}

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.AddComment(c.UserContext(), service.AddCommentInput{
		UserID:  middleware.CurrentUserID(c),
		PostID:  postID,
		Content: req.Content,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return respondMessage(c, fiber.StatusCreated, "Comment added successfully", fiber.Map{"post": post})
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page, limit := parsePageQuery(c)

	posts, pagination, err := s.postService.ListByAuthor(c.UserContext(), userID, service.ListPostsInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return respondPaginated(c, len(posts), pagination, fiber.Map{"posts": posts})
}
