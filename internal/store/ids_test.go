package store_test

import (
	"testing"

	"github.com/phrazzld/coursebook/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestIDAllocator(t *testing.T) {
	t.Parallel()

	var ids store.IDAllocator
	assert.Equal(t, 1, ids.Next())
	assert.Equal(t, 1, ids.Next(), "Next does not reserve")

	ids.Observe(4)
	assert.Equal(t, 5, ids.Next())

	ids.Observe(2)
	assert.Equal(t, 4, ids.Last(), "observing a lower id never moves backwards")
	assert.Equal(t, 5, ids.Next())
}
