package entity

import "time"

// DefaultSkibidiLevel is assigned at creation and never changes afterwards.
const DefaultSkibidiLevel = "sigma"

type Post struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Content      string    `json:"content"`
	Filename     string    `json:"filename,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	SkibidiLevel string    `json:"skibidi_level"`
}

// FeedPost is a Post decorated with the per-post counters and the sorted
// comment list the feed shows alongside it.
type FeedPost struct {
	Post
	LikeCount    int       `json:"like_count"`
	LikesCount   int       `json:"likes_count"`
	CommentCount int       `json:"comment_count"`
	CommentsData []Comment `json:"comments_data"`
}
