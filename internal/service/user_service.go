package service

import (
	"context"
	"io"
	"strings"

	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/storage"
	"ripple/internal/validation"
)

type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	store      storage.ObjectStorage
}

type ListUsersInput struct {
	Page  int
	Limit int
}

// UpdateProfileInput carries a partial profile update. Name is only applied
// when non-empty; the pointer fields are applied whenever they are present,
// so an explicit empty string clears the column.
type UpdateProfileInput struct {
	UserID   uint
	Name     string
	Bio      *string
	Location *string
	Website  *string
}

func NewUserService(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	store storage.ObjectStorage,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
		store:      store,
	}
}

// ListUsers returns active users with pagination metadata.
func (s *UserService) ListUsers(ctx context.Context, in ListUsersInput) ([]models.User, models.Pagination, error) {
	page, limit := normalizePage(in.Page, in.Limit)
	offset := (page - 1) * limit

	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	users, err := s.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return users, models.NewPagination(page, limit, total), nil
}

// GetUser returns an active user's profile with follow counts attached and,
// when callerID is non-zero, whether the caller follows them.
func (s *UserService) GetUser(ctx context.Context, userID, callerID uint) (*models.User, error) {
	user, err := s.userRepo.GetActiveByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.FollowersCount = followers
	user.FollowingCount = following

	if callerID != 0 && callerID != userID {
		isFollowing, err := s.followRepo.IsFollowing(ctx, callerID, userID)
		if err != nil {
			return nil, err
		}
		user.IsFollowing = isFollowing
	}

	return user, nil
}

// UpdateProfile applies a partial update to the caller's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	fields := map[string]any{}

	if name := strings.TrimSpace(in.Name); name != "" {
		if err := validation.ValidateName(name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		fields["name"] = name
	}
	if in.Bio != nil {
		fields["bio"] = *in.Bio
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.Website != nil {
		fields["website"] = *in.Website
	}

	// An update with no recognized fields is a valid no-op; the caller
	// still gets their current profile back.
	if err := s.userRepo.UpdateFields(ctx, in.UserID, fields); err != nil {
		return nil, err
	}

	return s.GetUser(ctx, in.UserID, in.UserID)
}

// UploadAssetInput carries a file upload for a profile asset.
type UploadAssetInput struct {
	UserID      uint
	Filename    string
	Reader      io.Reader
	Size        int64
	ContentType string
}

// UploadProfilePicture stores a new profile picture and persists its URL.
// The new object is uploaded before any mutation; the previous object is
// removed afterwards on a best-effort basis.
func (s *UserService) UploadProfilePicture(ctx context.Context, in UploadAssetInput) (*models.User, error) {
	return s.uploadAsset(ctx, in, "profile-pictures", "profile_picture", "profile_picture_key")
}

// UploadCoverPhoto stores a new cover photo and persists its URL.
func (s *UserService) UploadCoverPhoto(ctx context.Context, in UploadAssetInput) (*models.User, error) {
	return s.uploadAsset(ctx, in, "cover-photos", "cover_photo", "cover_photo_key")
}

func (s *UserService) uploadAsset(ctx context.Context, in UploadAssetInput, folder, urlColumn, keyColumn string) (*models.User, error) {
	if in.Size <= 0 {
		return nil, models.NewValidationError("No file uploaded")
	}
	if !strings.HasPrefix(in.ContentType, "image/") {
		return nil, models.NewValidationError("File must be an image")
	}

	user, err := s.userRepo.GetActiveByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	obj, err := s.store.Upload(ctx, folder, in.Filename, in.Reader, in.Size, in.ContentType)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	oldKey := user.ProfilePictureKey
	if urlColumn == "cover_photo" {
		oldKey = user.CoverPhotoKey
	}

	fields := map[string]any{
		urlColumn: obj.URL,
		keyColumn: obj.Key,
	}
	if err := s.userRepo.UpdateFields(ctx, in.UserID, fields); err != nil {
		return nil, err
	}

	if oldKey != "" {
		if err := s.store.Delete(ctx, oldKey); err != nil {
			middleware.Logger.WarnContext(ctx, "failed to delete replaced asset",
				"key", oldKey, "error", err)
		}
	}

	return s.GetUser(ctx, in.UserID, in.UserID)
}

// DeleteProfilePicture removes the caller's profile picture. It is a
// validation error when no picture is set.
func (s *UserService) DeleteProfilePicture(ctx context.Context, userID uint) (*models.User, error) {
	return s.deleteAsset(ctx, userID, "profile_picture", "profile_picture_key")
}

// DeleteCoverPhoto removes the caller's cover photo.
func (s *UserService) DeleteCoverPhoto(ctx context.Context, userID uint) (*models.User, error) {
	return s.deleteAsset(ctx, userID, "cover_photo", "cover_photo_key")
}

func (s *UserService) deleteAsset(ctx context.Context, userID uint, urlColumn, keyColumn string) (*models.User, error) {
	user, err := s.userRepo.GetActiveByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, key := user.ProfilePicture, user.ProfilePictureKey
	label := "profile picture"
	if urlColumn == "cover_photo" {
		url, key = user.CoverPhoto, user.CoverPhotoKey
		label = "cover photo"
	}
	// Records imported before object keys were tracked carry a URL with no
	// key; those still clear, they just have nothing to remove from storage.
	if url == "" && key == "" {
		return nil, models.NewValidationError("No " + label + " to delete")
	}

	fields := map[string]any{
		urlColumn: "",
		keyColumn: "",
	}
	if err := s.userRepo.UpdateFields(ctx, userID, fields); err != nil {
		return nil, err
	}

	if key != "" {
		if err := s.store.Delete(ctx, key); err != nil {
			middleware.Logger.WarnContext(ctx, "failed to delete stored asset",
				"key", key, "error", err)
		}
	}

	return s.GetUser(ctx, userID, userID)
}
