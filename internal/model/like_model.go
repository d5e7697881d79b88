package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel holds like membership for posts and videos alike, so post_id is
// not a hard foreign key: video ids land here too.
type LikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_post_username" json:"post_id"`
	Username  string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_likes_post_username" json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
