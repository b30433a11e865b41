package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID  uint
	Content string
}

type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Content string
}

type ListPostsInput struct {
	Page  int
	Limit int
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validation.ValidatePostContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post := &models.Post{
		Content:  strings.TrimSpace(in.Content),
		UserID:   in.UserID,
		IsActive: true,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// Refetch so the author and counts come back hydrated.
	return s.postRepo.GetActiveByID(ctx, post.ID)
}

func (s *PostService) GetPost(ctx context.Context, postID uint) (*models.Post, error) {
	return s.postRepo.GetActiveByID(ctx, postID)
}

// ListFeed returns the global feed, newest first, with pagination metadata.
func (s *PostService) ListFeed(ctx context.Context, in ListPostsInput) ([]*models.Post, models.Pagination, error) {
	page, limit := normalizePage(in.Page, in.Limit)
	offset := (page - 1) * limit

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	posts, err := s.postRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return posts, models.NewPagination(page, limit, total), nil
}

// ListByAuthor returns one author's active posts, newest first.
func (s *PostService) ListByAuthor(ctx context.Context, authorID uint, in ListPostsInput) ([]*models.Post, models.Pagination, error) {
	page, limit := normalizePage(in.Page, in.Limit)
	offset := (page - 1) * limit

	total, err := s.postRepo.CountByAuthor(ctx, authorID)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	posts, err := s.postRepo.ListByAuthor(ctx, authorID, limit, offset)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return posts, models.NewPagination(page, limit, total), nil
}

// UpdatePost replaces the content of a post the caller owns. A post that is
// missing, soft-deleted, or owned by someone else yields the same not-found
// error so callers cannot probe for other users' posts.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	if err := validation.ValidatePostContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	updated, err := s.postRepo.UpdateContentOwned(ctx, in.PostID, in.UserID, strings.TrimSpace(in.Content))
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, models.NewNotFoundError("Post not found or unauthorized")
	}

	return s.postRepo.GetActiveByID(ctx, in.PostID)
}

// DeletePost soft-deletes a post the caller owns. Same collapsed not-found
// behavior as UpdatePost.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	deleted, err := s.postRepo.SoftDeleteOwned(ctx, postID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewNotFoundError("Post not found or unauthorized")
	}
	return nil
}

// ToggleLike flips the caller's like on a post. Liking an already-liked post
// removes the like; the operation is idempotent per state. Returns the
// refreshed post and whether the post is liked after the toggle.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (*models.Post, bool, error) {
	exists, err := s.postRepo.ActiveExists(ctx, postID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, models.NewNotFoundError("Post not found")
	}

	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, false, err
	}

	if liked {
		err = s.postRepo.Unlike(ctx, userID, postID)
	} else {
		err = s.postRepo.Like(ctx, userID, postID)
	}
	if err != nil {
		return nil, false, err
	}

	post, err := s.postRepo.GetActiveByID(ctx, postID)
	if err != nil {
		return nil, false, err
	}
	return post, !liked, nil
}

type AddCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

// AddComment appends a comment to an active post. Comments are append-only;
// there is no edit or delete path.
func (s *PostService) AddComment(ctx context.Context, in AddCommentInput) (*models.Post, error) {
	if err := validation.ValidateCommentContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	exists, err := s.postRepo.ActiveExists(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post not found")
	}

	comment := &models.Comment{
		Content: strings.TrimSpace(in.Content),
		UserID:  in.UserID,
		PostID:  in.PostID,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	return s.postRepo.GetActiveByID(ctx, in.PostID)
}

// normalizePage applies the default page/limit and clamps abusive values.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
