package release

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var ErrPoolClosed = errors.New("worker pool is closed")

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

// WorkerPool runs tasks on a fixed number of goroutines. The task queue holds
// as many tasks as there are workers.
type WorkerPool struct {
	name    string
	tasks   chan Task
	mu      sync.RWMutex
	closed  bool
	workers sync.WaitGroup
}

func NewWorkerPool(name string, size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	wp := &WorkerPool{name: name, tasks: make(chan Task, size)}

	wp.workers.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker(i)
	}
	return wp
}

func (wp *WorkerPool) worker(id int) {
	defer wp.workers.Done()
	for task := range wp.tasks {
		if err := wp.run(task); err != nil {
			zap.L().Error("Task execution failed", zap.String("pool", wp.name), zap.Int("worker", id), zap.Error(err))
		}
	}
}

func (wp *WorkerPool) run(task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return task()
}

// AddTask blocks until a worker slot is free or ctx is done.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return ErrPoolClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

// Close rejects new tasks, runs the queued ones and waits for the workers to
// exit. Later calls return immediately.
func (wp *WorkerPool) Close() {
	wp.mu.Lock()
	if !wp.closed {
		wp.closed = true
		close(wp.tasks)
	}
	wp.mu.Unlock()
	wp.workers.Wait()
}
