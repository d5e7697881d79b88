package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;index" json:"post_id"`
	Username  string    `gorm:"type:varchar(100);not null" json:"username"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`

	// Deleting a post cascades to its comments; this is the only delete
	// path in the system.
	Post PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
