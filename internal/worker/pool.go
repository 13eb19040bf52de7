package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/GildedRose_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool runs jobs on a fixed number of goroutines.
// A pool is single use: Start, Enqueue any number of jobs, then Wait.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = DefaultWorkerCount
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
	}
}

// Start starts the workers. Jobs receive ctx.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

// worker is the worker loop
func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for job := range p.jobQueue {
		if err := job.Process(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
			p.mu.Lock()
			p.errs = append(p.errs, err)
			p.mu.Unlock()
		}
	}
}

// Enqueue adds a job to the queue, blocking while the queue is full
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// Wait closes the queue, waits for queued jobs to finish and returns every
// job error joined together.
func (p *Pool) Wait() error {
	close(p.jobQueue)
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}
