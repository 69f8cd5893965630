// Package worker runs independent jobs on a fixed number of goroutines.
// Each job carries the index it was submitted with so callers can restore
// submission order after results arrive out of order.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Job is one unit of work.
type Job[In any] struct {
	Index int
	Input In
}

// Result is the output of one job.
type Result[Out any] struct {
	Index  int
	Output Out
}

// Func processes a single job.
type Func[In, Out any] func(job Job[In]) Out

// Pool fans jobs out to workers and collects their results.
type Pool[In, Out any] struct {
	numWorkers int
	bufferSize int
	jobs       chan Job[In]
	results    chan Result[Out]
	fn         Func[In, Out]
	wg         sync.WaitGroup
	stopped    atomic.Bool
}

// Option configures a Pool.
type Option func(*settings)

type settings struct {
	workers int
	buffer  int
}

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// WithBufferSize sets the job and result channel capacity. Values below 1
// are ignored.
func WithBufferSize(size int) Option {
	return func(s *settings) {
		if size >= 1 {
			s.buffer = size
		}
	}
}

// New creates a pool running fn. Defaults: 1 worker, buffer size of 10.
func New[In, Out any](fn Func[In, Out], opts ...Option) *Pool[In, Out] {
	s := settings{workers: 1, buffer: 10}
	for _, opt := range opts {
		opt(&s)
	}
	return &Pool[In, Out]{
		numWorkers: s.workers,
		bufferSize: s.buffer,
		jobs:       make(chan Job[In], s.buffer),
		results:    make(chan Result[Out], s.buffer),
		fn:         fn,
	}
}

// Start launches the workers.
func (p *Pool[In, Out]) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

func (p *Pool[In, Out]) work() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.IsStopped() {
			continue // drain
		}
		p.results <- Result[Out]{Index: job.Index, Output: p.fn(job)}
	}
}

// Submit queues a job, blocking while the buffer is full.
func (p *Pool[In, Out]) Submit(index int, input In) {
	p.jobs <- Job[In]{Index: index, Input: input}
}

// TrySubmit queues a job without blocking. It returns false when the buffer
// is full or the pool has been stopped.
func (p *Pool[In, Out]) TrySubmit(index int, input In) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.jobs <- Job[In]{Index: index, Input: input}:
		return true
	default:
		return false
	}
}

// Stop makes workers discard queued jobs instead of running them.
func (p *Pool[In, Out]) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool[In, Out]) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the job channel, waits for the workers and then closes the
// result channel.
func (p *Pool[In, Out]) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel.
func (p *Pool[In, Out]) Results() <-chan Result[Out] {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool[In, Out]) NumWorkers() int {
	return p.numWorkers
}

// Map runs fn over inputs on workers goroutines and returns the outputs in
// input order.
func Map[In, Out any](inputs []In, workers int, fn Func[In, Out]) []Out {
	buffer := len(inputs)
	if buffer > 100 {
		buffer = 100
	}
	pool := New(fn, WithWorkers(workers), WithBufferSize(buffer))
	pool.Start()

	go func() {
		for i, in := range inputs {
			pool.Submit(i, in)
		}
		pool.Close()
	}()

	collected := make([]Result[Out], 0, len(inputs))
	for r := range pool.Results() {
		collected = append(collected, r)
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].Index < collected[j].Index })

	out := make([]Out, len(collected))
	for i, r := range collected {
		out[i] = r.Output
	}
	return out
}
