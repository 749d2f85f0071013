package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageToOffset(t *testing.T) {
	offset, page, limit := PageToOffset(0, 0)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	offset, page, limit = PageToOffset(3, 20)
	assert.Equal(t, 40, offset)
	assert.Equal(t, 3, page)
	assert.Equal(t, 20, limit)

	offset, _, _ = PageToOffset(-5, 10)
	assert.Equal(t, 0, offset)
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(0, 1, 10)
	assert.EqualValues(t, 0, p.Total)
	assert.Equal(t, 0, p.TotalPages)

	p = NewPagination(25, 2, 10)
	assert.EqualValues(t, 25, p.Total)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 3, p.TotalPages)

	p = NewPagination(30, 1, 10)
	assert.Equal(t, 3, p.TotalPages)
}
