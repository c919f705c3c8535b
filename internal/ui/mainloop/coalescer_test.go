package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queuePost(queue *[]func()) func(func()) bool {
	return func(fn func()) bool {
		*queue = append(*queue, fn)
		return true
	}
}

func TestCoalescer_MergesBurstIntoSingleRun(t *testing.T) {
	var queue []func()
	c := NewCoalescer(queuePost(&queue))

	value := 0
	for i := 1; i <= 5; i++ {
		c.Post("repaint", func() { value = i })
	}

	require.Len(t, queue, 1)
	assert.True(t, c.Pending("repaint"))
	assert.Equal(t, 4, c.Merged())

	queue[0]()
	assert.Equal(t, 5, value)
	assert.False(t, c.Pending("repaint"))

	c.Post("repaint", func() { value = 6 })
	assert.Len(t, queue, 2)
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	var queue []func()
	c := NewCoalescer(queuePost(&queue))

	c.Post("repaint", func() {})
	c.Post("layout", func() {})
	assert.Len(t, queue, 2)
}

func TestCoalescer_DropsWorkAfterStop(t *testing.T) {
	var queue []func()
	c := NewCoalescer(queuePost(&queue))

	ran := false
	c.Post("repaint", func() { ran = true })
	c.Stop()
	require.Len(t, queue, 1)
	queue[0]()
	assert.False(t, ran)

	c.Post("repaint", func() { ran = true })
	assert.Len(t, queue, 1)
}

func TestCoalescer_RejectedPostIsForgotten(t *testing.T) {
	c := NewCoalescer(func(func()) bool { return false })
	c.Post("repaint", func() {})
	assert.False(t, c.Pending("repaint"))
}

func TestCoalescer_IgnoresEmptyInput(t *testing.T) {
	var queue []func()
	c := NewCoalescer(queuePost(&queue))
	c.Post("", func() {})
	c.Post("repaint", nil)
	assert.Empty(t, queue)
}

func TestNewCoalescer_PanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { _ = NewCoalescer(nil) })
}
