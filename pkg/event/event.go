// Package event provides a simple synchronous/async event dispatcher.
package event

import (
	"fmt"
	"sync"

	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/workerpool"
)

// Handler is a function that receives an event payload.
type Handler func(payload interface{})

// Dispatcher routes named events to their listeners. The zero value is not
// usable; call New.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	wg       sync.WaitGroup
	pool     *workerpool.Pool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithPool runs FireAsync listeners on pool instead of fresh goroutines.
// When the pool is full or closed the listener runs on the caller's
// goroutine.
func WithPool(pool *workerpool.Pool) Option {
	return func(d *Dispatcher) { d.pool = pool }
}

func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{handlers: map[string][]Handler{}}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Listen registers a handler for the given event name.
func (d *Dispatcher) Listen(event string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[event] = append(d.handlers[event], handler)
}

// Fire dispatches an event synchronously to all registered listeners.
// A panicking listener is logged and does not stop the others.
func (d *Dispatcher) Fire(event string, payload interface{}) {
	for _, h := range d.listeners(event) {
		d.call(event, h, payload)
	}
}

// FireAsync dispatches the event to all listeners concurrently. Wait blocks
// until those calls finish.
func (d *Dispatcher) FireAsync(event string, payload interface{}) {
	for _, h := range d.listeners(event) {
		h := h
		d.wg.Add(1)
		task := func() {
			defer d.wg.Done()
			d.call(event, h, payload)
		}

		if d.pool == nil {
			go task()
			continue
		}
		if err := d.pool.Submit(task); err != nil {
			logger.Warn("event: running listener inline", "event", event, "reason", err)
			task()
		}
	}
}

// Wait blocks until every FireAsync call has been handled.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Flush removes all listeners.
func (d *Dispatcher) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = map[string][]Handler{}
}

func (d *Dispatcher) listeners(event string) []Handler {
	d.mu.RLock()
	defer d.mu.RUnlock()
	hs := make([]Handler, len(d.handlers[event]))
	copy(hs, d.handlers[event])
	return hs
}

func (d *Dispatcher) call(event string, h Handler, payload interface{}) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("event: listener panicked", "event", event, "panic", fmt.Sprint(rec))
		}
	}()
	h(payload)
}
