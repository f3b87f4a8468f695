// Package workerpool provides a bounded goroutine pool with backpressure.
//
// Submit never blocks: when every worker is busy and the queue is full it
// returns ErrPoolFull so the caller can choose to run the task inline, drop
// it or reject the request.
//
//	pool := workerpool.New(4)
//	defer pool.Shutdown()
//
//	if err := pool.Submit(task); err != nil {
//	    task()
//	}
package workerpool

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shashiranjanraj/storefront/pkg/logger"
)

// ErrPoolFull is returned by Submit when all workers are busy and the task
// queue is at capacity.
var ErrPoolFull = errors.New("workerpool: pool is full")

// ErrPoolClosed is returned by Submit after Shutdown has been called.
var ErrPoolClosed = errors.New("workerpool: pool is closed")

// Pool is a bounded goroutine pool.
type Pool struct {
	mu     sync.RWMutex // guards closed against sends on a closed tasks
	closed bool
	tasks  chan func()
	wg     sync.WaitGroup
	once   sync.Once
}

// New creates a Pool with size workers and a queue of 2×size.
func New(size int) *Pool {
	if size <= 0 {
		size = 1
	}

	p := &Pool{tasks: make(chan func(), size*2)}
	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// Submit enqueues task without blocking.
func (p *Pool) Submit(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}
	select {
	case p.tasks <- task:
		return nil
	default:
		return ErrPoolFull
	}
}

// Shutdown stops accepting tasks and waits for queued ones to finish. It is
// safe to call more than once.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.tasks)
		p.mu.Unlock()
		p.wg.Wait()
	})
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		safeRun(task)
	}
}

// safeRun keeps a panicking task from killing its worker.
func safeRun(task func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("workerpool: task panicked", "panic", fmt.Sprint(r))
		}
	}()
	task()
}
