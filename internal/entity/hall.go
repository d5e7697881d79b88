package entity

import "time"

// HallEntry references a post curated into hall-of-fame or hall-of-shame.
// Curation happens out of band; nothing in the service inserts entries.
type HallEntry struct {
	PostID  string    `json:"post_id"`
	AddedAt time.Time `json:"added_timestamp"`
}
