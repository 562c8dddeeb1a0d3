// Package perf provides performance optimization utilities
package perf

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

const (
	// defaultQueueMultiplier is the multiplier for task queue size relative to maxWorkers
	defaultQueueMultiplier = 2
)

// WorkerPool manages a pool of goroutines for concurrent task execution
type WorkerPool struct {
	maxWorkers int
	taskQueue  chan func()
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	cancelOnce sync.Once
	stopped    atomic.Bool
	activeJobs atomic.Int32
}

// NewWorkerPool creates a new worker pool with the specified maximum number of workers
func NewWorkerPool(maxWorkers int) (*WorkerPool, error) {
	if maxWorkers <= 0 {
		return nil, fmt.Errorf("maxWorkers must be positive, got %d", maxWorkers)
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		maxWorkers: maxWorkers,
		taskQueue:  make(chan func(), maxWorkers*defaultQueueMultiplier),
		ctx:        ctx,
		cancel:     cancel,
	}, nil
}

// Start starts the worker pool
func (p *WorkerPool) Start() {
	for i := 0; i < p.maxWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes tasks from the queue
func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case task, ok := <-p.taskQueue:
			if !ok {
				return
			}
			p.activeJobs.Add(1)
			func() {
				// Ensure counter decrements even if task panics
				defer p.activeJobs.Add(-1)
				defer func() {
					_ = recover()
				}()
				task()
			}()
		}
	}
}

// Submit enqueues a task for execution. It blocks while the queue is full
// and fails once the pool has been stopped.
func (p *WorkerPool) Submit(task func()) error {
	if p.stopped.Load() {
		return fmt.Errorf("worker pool is stopped")
	}
	select {
	case <-p.ctx.Done():
		return fmt.Errorf("worker pool is stopped")
	case p.taskQueue <- task:
		return nil
	}
}

// ActiveJobs returns the number of tasks currently executing.
func (p *WorkerPool) ActiveJobs() int {
	return int(p.activeJobs.Load())
}

// Stop drains the queue and waits for in-flight tasks to finish.
func (p *WorkerPool) Stop() {
	if p.stopped.Swap(true) {
		return
	}
	close(p.taskQueue)
	p.wg.Wait()
	p.cancelOnce.Do(p.cancel)
}

// Kill cancels the pool without draining the queue.
func (p *WorkerPool) Kill() {
	p.stopped.Store(true)
	p.cancelOnce.Do(p.cancel)
	p.wg.Wait()
}
