package usecase

import "math"

const (
	PostsPerPage    = 10
	CommentsPerPage = 5
)

// Page is one 1-indexed slice of a collection plus navigation state. Total
// pages never drop below 1, so an empty collection still renders page 1 of 1.
type Page[T any] struct {
	Items      []T  `json:"-"`
	Total      int  `json:"total"`
	PageNum    int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
	PrevNum    *int `json:"prev_num"`
	NextNum    *int `json:"next_num"`
}

func Paginate[T any](items []T, page, perPage int) Page[T] {
	if page < 1 {
		page = 1
	}

	total := len(items)
	totalPages := 1
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(perPage)))
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	result := Page[T]{
		Items:      items[start:end],
		Total:      total,
		PageNum:    page,
		PerPage:    perPage,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
	if result.HasPrev {
		prev := page - 1
		result.PrevNum = &prev
	}
	if result.HasNext {
		next := page + 1
		result.NextNum = &next
	}
	return result
}
