// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents an authored content unit in the Ripple application.
//
// Likes and Comments are owned children: they are created, read, and
// destroyed only as part of their parent post. IsActive is the soft-delete
// tombstone; inactive posts are excluded from all read paths but the record
// and its embedded likes/comments are retained.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Content  string `gorm:"type:text;not null" json:"content"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID" json:"author"`
	IsActive bool   `gorm:"default:true;index" json:"is_active"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"-" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int       `gorm:"-" json:"comments_count"`
	Likes         []Like    `gorm:"foreignKey:PostID" json:"likes"`
	Comments      []Comment `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
