package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQueryNormalize(t *testing.T) {
	q := ListQuery{}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, "created_at", q.SortBy)
	assert.Equal(t, "desc", q.Order)

	q = ListQuery{Page: 3, Limit: 25, SortBy: "name", Order: "asc"}
	q.Normalize()
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "name", q.SortBy)
	assert.Equal(t, "asc", q.Order)

	// Anything other than asc collapses to desc
	q = ListQuery{Order: "ASC; DROP TABLE"}
	q.Normalize()
	assert.Equal(t, "desc", q.Order)
}

func TestListQueryOffset(t *testing.T) {
	q := ListQuery{Page: 1, Limit: 10}
	assert.Equal(t, 0, q.Offset())

	q = ListQuery{Page: 4, Limit: 25}
	assert.Equal(t, 75, q.Offset())
}
