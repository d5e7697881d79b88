package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	Username    string    `gorm:"type:varchar(100);not null" json:"username"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Filename    string    `gorm:"type:varchar(255)" json:"filename"`
	Views       int       `gorm:"default:0" json:"views"`
	Timestamp   time.Time `gorm:"not null;index" json:"timestamp"`
}

func (VideoModel) TableName() string {
	return "videos"
}

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
