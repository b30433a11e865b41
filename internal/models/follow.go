package models

import "time"

// Follow represents a follower/following relationship between two users.
// The relationship is read-only through the API surface for now: profile
// reads expose counts and the caller's follow status, but no endpoint
// mutates the table yet.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follower_following" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follower_following" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
