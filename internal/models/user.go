// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account in the Ripple application.
//
// Password is the bcrypt hash of the credential and is never serialized.
// ProfilePictureKey and CoverPhotoKey hold the object-storage identifiers
// needed to delete the corresponding assets; clients only ever see the URLs.
type User struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Name              string `gorm:"not null" json:"name"`
	Email             string `gorm:"unique;not null" json:"email"`
	Password          string `gorm:"not null" json:"-"`
	Bio               string `json:"bio"`
	Location          string `json:"location"`
	Website           string `json:"website"`
	ProfilePicture    string `json:"profile_picture"`
	ProfilePictureKey string `json:"-"`
	CoverPhoto        string `json:"cover_photo"`
	CoverPhotoKey     string `json:"-"`
	// IsActive is the soft-delete tombstone: deactivated accounts are
	// filtered from every read path and rejected at the auth gate.
	IsActive bool `gorm:"default:true;index" json:"is_active"`
	// FollowersCount and FollowingCount are not persisted; computed at query time
	FollowersCount int64 `gorm:"-" json:"followers_count"`
	FollowingCount int64 `gorm:"-" json:"following_count"`
	// IsFollowing indicates whether the current requesting user follows this user (computed)
	IsFollowing bool      `gorm:"-" json:"is_following"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Posts       []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}
