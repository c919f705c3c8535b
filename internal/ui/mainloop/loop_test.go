package mainloop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_FIFO(t *testing.T) {
	l := New()
	var got []int
	for i := 0; i < 3; i++ {
		require.True(t, l.Post(func() { got = append(got, i) }))
	}
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 3, l.Drain())
	assert.Equal(t, []int{0, 1, 2}, got)
	assert.Equal(t, 0, l.Len())
}

func TestLoop_DrainRunsNestedPosts(t *testing.T) {
	l := New()
	ran := 0
	l.Post(func() {
		ran++
		l.Post(func() { ran++ })
	})
	assert.Equal(t, 2, l.Drain())
	assert.Equal(t, 2, ran)
}

func TestLoop_NextBlocksUntilPost(t *testing.T) {
	l := New()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		time.Sleep(10 * time.Millisecond)
		l.Post(func() {})
	}()

	fn, err := l.Next(ctx)
	require.NoError(t, err)
	assert.NotNil(t, fn)
}

func TestLoop_NextHonoursContext(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoop_WaitLeavesTasksQueued(t *testing.T) {
	l := New()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		time.Sleep(10 * time.Millisecond)
		l.Post(func() {})
	}()

	require.NoError(t, l.Wait(ctx))
	assert.Equal(t, 1, l.Len())
	require.NoError(t, l.Wait(ctx), "returns at once while tasks are queued")
	assert.Equal(t, 1, l.Drain())
}

func TestLoop_WaitIgnoresStaleWake(t *testing.T) {
	l := New()
	l.Post(func() {})
	l.Drain()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, l.Wait(ctx), context.DeadlineExceeded)
}

func TestLoop_WaitAfterClose(t *testing.T) {
	l := New()
	l.Post(func() {})
	l.Close()

	require.NoError(t, l.Wait(context.Background()))
	l.Drain()
	assert.ErrorIs(t, l.Wait(context.Background()), ErrClosed)
}

func TestLoop_CloseDrainsThenStops(t *testing.T) {
	l := New()
	ran := false
	l.Post(func() { ran = true })
	l.Close()
	l.Close()

	assert.False(t, l.Post(func() {}))
	require.NoError(t, l.Run(context.Background()))
	assert.True(t, ran)

	_, err := l.Next(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestLoop_ConcurrentPosters(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l.Post(func() {})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, l.Drain())
}

func TestLoop_CoalescerOnLoop(t *testing.T) {
	l := New()
	c := NewCoalescer(l.Post)
	count := 0
	for i := 0; i < 10; i++ {
		c.Post("repaint", func() { count++ })
	}
	assert.Equal(t, 1, l.Drain())
	assert.Equal(t, 1, count)
}
