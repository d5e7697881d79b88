package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HallOfFameModel struct {
	ID             string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID         string    `gorm:"type:uuid;not null;index" json:"post_id"`
	AddedTimestamp time.Time `gorm:"not null;index" json:"added_timestamp"`
}

func (HallOfFameModel) TableName() string {
	return "hall_of_fame"
}

func (h *HallOfFameModel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return nil
}

type HallOfShameModel struct {
	ID             string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID         string    `gorm:"type:uuid;not null;index" json:"post_id"`
	AddedTimestamp time.Time `gorm:"not null;index" json:"added_timestamp"`
}

func (HallOfShameModel) TableName() string {
	return "hall_of_shame"
}

func (h *HallOfShameModel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return nil
}
