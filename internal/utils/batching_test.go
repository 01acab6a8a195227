package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchBuffer_AddAndDrain(t *testing.T) {
	b := NewBatchBuffer[string]()

	assert.False(t, b.HasData())
	assert.Nil(t, b.GetAndClear())

	b.Add("one")
	b.Add("two")

	assert.True(t, b.HasData())
	assert.Equal(t, 2, b.Size())

	batch := b.GetAndClear()
	assert.Equal(t, []string{"one", "two"}, batch)
	assert.False(t, b.HasData())
	assert.Zero(t, b.Size())
}

func TestBatchBuffer_ConcurrentAdds(t *testing.T) {
	b := NewBatchBuffer[int]()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			b.Add(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, b.Size())
}
