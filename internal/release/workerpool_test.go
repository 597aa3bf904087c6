package release

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name           string
		numTasks       int
		numWorkers     int
		expectedErrors int
	}{
		{
			name:       "Test worker pool with simple tasks",
			numTasks:   5,
			numWorkers: 2,
		},
		{
			name:           "Test worker pool with error in task",
			numTasks:       2,
			numWorkers:     2,
			expectedErrors: 1,
		},
		{
			name:       "Test worker pool with zero size falls back to one worker",
			numTasks:   3,
			numWorkers: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool("test", tt.numWorkers)
			defer wp.Close()

			var executed, failed atomic.Int32
			var wg sync.WaitGroup

			for i := 0; i < tt.numTasks; i++ {
				wg.Add(1)
				task := func(i int) Task {
					return func() error {
						defer wg.Done()
						if i == tt.numTasks-1 && tt.expectedErrors > 0 {
							failed.Add(1)
							return assert.AnError
						}
						time.Sleep(10 * time.Millisecond)
						executed.Add(1)
						return nil
					}
				}(i)

				require.NoError(t, wp.AddTask(context.Background(), task), "failed to add task to pool")
			}

			wg.Wait()

			assert.Equal(t, int32(tt.numTasks-tt.expectedErrors), executed.Load(), "number of executed tasks does not match")
			assert.Equal(t, int32(tt.expectedErrors), failed.Load(), "number of errors does not match")
		})
	}
}

func TestWorkerPool_CanceledContext(t *testing.T) {
	wp := NewWorkerPool("test", 1)
	defer wp.Close()

	block := make(chan struct{})
	defer close(block)
	// occupy the worker and the single buffer slot
	require.NoError(t, wp.AddTask(context.Background(), func() error { <-block; return nil }))
	require.NoError(t, wp.AddTask(context.Background(), func() error { <-block; return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.AddTask(ctx, func() error {
		t.Error("Task should not be executed")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkerPool_CloseTwice(t *testing.T) {
	wp := NewWorkerPool("test", 2)
	assert.NotPanics(t, func() {
		wp.Close()
		wp.Close()
	})
}

func TestWorkerPool_CloseDrainsQueuedTasks(t *testing.T) {
	wp := NewWorkerPool("test", 1)

	var executed atomic.Int32
	for i := 0; i < 2; i++ {
		require.NoError(t, wp.AddTask(context.Background(), func() error {
			time.Sleep(5 * time.Millisecond)
			executed.Add(1)
			return nil
		}))
	}

	wp.Close()
	assert.Equal(t, int32(2), executed.Load())
}

func TestWorkerPool_AddTaskAfterClose(t *testing.T) {
	wp := NewWorkerPool("test", 1)
	wp.Close()

	err := wp.AddTask(context.Background(), func() error {
		t.Error("Task should not be executed")
		return nil
	})
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestWorkerPool_PanickingTask(t *testing.T) {
	wp := NewWorkerPool("test", 1)
	defer wp.Close()

	done := make(chan struct{})
	require.NoError(t, wp.AddTask(context.Background(), func() error { panic("boom") }))
	require.NoError(t, wp.AddTask(context.Background(), func() error { close(done); return nil }))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not survive a panicking task")
	}
}
