package importer

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

//go:generate mockgen -source=workerpool.go -destination=mock_workerpool.go -package=importer

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

type WorkerPool struct {
	pool chan Task
	once sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	pool := make(chan Task, size)
	wp := &WorkerPool{pool: pool}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Warn("import task failed", zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

// Close stops the workers once queued tasks drain. AddTask must not be called after it.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		close(wp.pool)
	})
}
