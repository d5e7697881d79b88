package model

import "time"

type StoredFileModel struct {
	Name        string    `gorm:"type:varchar(255);primary_key" json:"name"`
	Data        []byte    `gorm:"type:bytea;not null" json:"-"`
	ContentType string    `gorm:"type:varchar(100)" json:"content_type"`
	Size        int64     `gorm:"not null" json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

func (StoredFileModel) TableName() string {
	return "stored_files"
}
