// Package models contains data structures for the application's domain models.
package models

import "time"

// Comment represents a comment on a post in the Ripple application.
// Comments are append-only and keep strict insertion order; they are never
// edited or individually deleted.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
