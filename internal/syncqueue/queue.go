// Package syncqueue serializes background loader work. Each partition owns
// one worker goroutine, so two tasks submitted to the same partition never
// run concurrently and run in submission order. Tasks on different
// partitions are independent.
package syncqueue

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the queue and drains it on shutdown.
var Module = fx.Module("syncqueue",
	fx.Provide(New),
	fx.Invoke(func(lc fx.Lifecycle, q *Queue) {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return q.Shutdown(ctx)
			},
		})
	}),
)

// Task is one unit of loader work.
type Task func(ctx context.Context) error

// Future resolves when the submitted task has finished.
type Future struct {
	done chan struct{}
	err  error
}

// Wait blocks until the task has run or ctx expires. After the queue is
// shut down, submitted-but-unrun tasks resolve with ErrShutdown.
func (f *Future) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ErrShutdown resolves futures whose task never ran.
var ErrShutdown = fmt.Errorf("sync queue shut down")

type item struct {
	task   Task
	future *Future
}

type partition struct {
	ch chan item
	wg sync.WaitGroup
}

// Queue is the per-partition single-writer task queue.
type Queue struct {
	log *zap.Logger

	mu         sync.Mutex
	partitions map[string]*partition
	closed     bool
}

// New builds an empty queue. Partitions are created on first use.
func New(log *zap.Logger) *Queue {
	return &Queue{
		log:        log.Named("syncqueue"),
		partitions: make(map[string]*partition),
	}
}

// Submit enqueues task on the named partition and returns its future.
// Submitting after Shutdown returns a future already resolved with
// ErrShutdown.
func (q *Queue) Submit(name string, task Task) *Future {
	f := &Future{done: make(chan struct{})}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		f.err = ErrShutdown
		close(f.done)
		return f
	}
	p, ok := q.partitions[name]
	if !ok {
		p = &partition{ch: make(chan item, 64)}
		q.partitions[name] = p
		p.wg.Add(1)
		go q.run(name, p)
	}
	// Send under the lock so Shutdown cannot close the channel between the
	// closed check and the send. Workers drain without taking the lock.
	p.ch <- item{task: task, future: f}
	q.mu.Unlock()
	return f
}

func (q *Queue) run(name string, p *partition) {
	defer p.wg.Done()
	for it := range p.ch {
		err := it.task(context.Background())
		if err != nil {
			q.log.Warn("task failed",
				zap.String("partition", name), zap.Error(err))
		}
		it.future.err = err
		close(it.future.done)
	}
}

// Shutdown stops accepting work, lets every queued task finish, and waits
// for the workers, bounded by ctx.
func (q *Queue) Shutdown(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	parts := make([]*partition, 0, len(q.partitions))
	for _, p := range q.partitions {
		close(p.ch)
		parts = append(parts, p)
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		for _, p := range parts {
			p.wg.Wait()
		}
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
