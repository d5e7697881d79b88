package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate_Empty(t *testing.T) {
	page := Paginate([]int{}, 1, 10)

	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.PageNum)
	assert.False(t, page.HasPrev)
	assert.False(t, page.HasNext)
	assert.Nil(t, page.PrevNum)
	assert.Nil(t, page.NextNum)
	assert.Empty(t, page.Items)
}

func TestPaginate_TwentyFiveItems(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	first := Paginate(items, 1, 10)
	assert.Len(t, first.Items, 10)
	assert.Equal(t, 3, first.TotalPages)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrev)
	assert.Equal(t, 2, *first.NextNum)

	last := Paginate(items, 3, 10)
	assert.Len(t, last.Items, 5)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
	assert.Equal(t, 2, *last.PrevNum)
	assert.Nil(t, last.NextNum)
}

func TestPaginate_PageBeyondEnd(t *testing.T) {
	items := []int{1, 2, 3}

	page := Paginate(items, 5, 10)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 3, page.Total)
	assert.True(t, page.HasPrev)
	assert.False(t, page.HasNext)
}

func TestPaginate_PageSlice(t *testing.T) {
	items := []int{10, 20, 30, 40, 50}

	page := Paginate(items, 2, 2)
	assert.Equal(t, []int{30, 40}, page.Items)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasPrev)
	assert.True(t, page.HasNext)
}

func TestPaginate_InvalidPageDefaultsToFirst(t *testing.T) {
	items := []int{1, 2, 3}

	page := Paginate(items, 0, 2)
	assert.Equal(t, 1, page.PageNum)
	assert.Equal(t, []int{1, 2}, page.Items)
}
