package entity

import "time"

type Video struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Filename    string    `json:"filename,omitempty"`
	Views       int       `json:"views"`
	Timestamp   time.Time `json:"timestamp"`
}
