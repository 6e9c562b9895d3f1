package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchBuffer(t *testing.T) {
	buf := NewBatchBuffer[int]()

	assert.False(t, buf.HasData())
	assert.Nil(t, buf.GetAndClear())

	buf.Add(1)
	buf.Add(2)
	buf.Add(3)
	assert.Equal(t, 3, buf.Size())
	assert.True(t, buf.HasData())

	batch := buf.GetAndClear()
	assert.Equal(t, []int{1, 2, 3}, batch)
	assert.Zero(t, buf.Size())
	assert.False(t, buf.HasData())
}
