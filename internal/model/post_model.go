package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	Username     string    `gorm:"type:varchar(100);not null" json:"username"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Filename     string    `gorm:"type:varchar(255)" json:"filename"`
	Timestamp    time.Time `gorm:"not null;index" json:"timestamp"`
	SkibidiLevel string    `gorm:"type:varchar(50);default:'sigma'" json:"skibidi_level"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
