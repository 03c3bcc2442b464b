package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginate(t *testing.T) {
	items := seq(24)

	tests := []struct {
		name string
		page int
		want []int
	}{
		{"first page", 1, seq(10)},
		{"second page", 2, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}},
		{"partial last page", 3, []int{21, 22, 23, 24}},
		{"past the end", 4, []int{}},
		{"far past the end", 1000, []int{}},
		{"huge", math.MaxInt, []int{}},
		{"zero", 0, []int{}},
		{"negative", -1, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(items, tt.page))
		})
	}
}

func TestPaginateConcatenationReproducesOrder(t *testing.T) {
	items := seq(37)

	var all []int
	for page := 1; ; page++ {
		got := Paginate(items, page)
		if len(got) == 0 {
			break
		}
		assert.LessOrEqual(t, len(got), PageSize)
		all = append(all, got...)
	}

	assert.Equal(t, items, all)
}

func TestPaginateEmpty(t *testing.T) {
	got := Paginate([]string{}, 1)
	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.False(t, OutOfRange(0, len(got)))
}

func TestOutOfRange(t *testing.T) {
	assert.True(t, OutOfRange(24, 0))
	assert.False(t, OutOfRange(24, 4))
	assert.False(t, OutOfRange(0, 0))
}

func TestParsePage(t *testing.T) {
	page, err := ParsePage("")
	require.NoError(t, err)
	assert.Equal(t, 1, page)

	page, err = ParsePage("3")
	require.NoError(t, err)
	assert.Equal(t, 3, page)

	page, err = ParsePage("0")
	require.NoError(t, err)
	assert.Equal(t, 0, page)

	_, err = ParsePage("two")
	assert.ErrorIs(t, err, ErrInvalidPage)
}
