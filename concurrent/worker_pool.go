// Package concurrent provides a small generic worker pool: jobs go in on one
// channel, results come out on another, and a fixed number of goroutines
// apply the same function to every job.
package concurrent

import (
	"sync"
)

// JobFunc turns one job into one result.
type JobFunc[T any, G any] func(job T) G

// WorkerPool runs a JobFunc over queued jobs with numWorkers goroutines.
//
// Usage:
//
//	wp := NewWorkerPool[Job, Out](4, len(jobs))
//	wp.Start(fn)
//	for _, j := range jobs { wp.AddJob(j) }
//	wp.Close()
//	wp.Wait()
//	for r := range wp.CollectResults() { ... }
//
// Results arrive in completion order, not submission order.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
}

// NewWorkerPool creates a pool. numWorkers < 1 is treated as 1; the job and
// result queues are buffered to jobQueueSize.
func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if jobQueueSize < 0 {
		jobQueueSize = 0
	}

	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- jobFunc(job)
	}
}

// Start launches the workers.
func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

// Wait blocks until every worker has drained the job queue, then closes the
// results channel. Close must have been called first.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

// AddJob enqueues a job. It blocks when the queue is full.
func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- job
}

// CollectResults returns the results channel.
func (wp *WorkerPool[T, G]) CollectResults() chan G {
	return wp.results
}

// Close signals that no more jobs will be added.
func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

// NumWorkers reports the number of goroutines Start launches.
func (wp *WorkerPool[T, G]) NumWorkers() int {
	return wp.numWorkers
}

// Map applies fn to every job on a fresh pool and returns the results in job
// order. The queues are sized to len(jobs), so Map never blocks on AddJob.
func Map[T any, G any](numWorkers int, jobs []T, fn func(T) G) []G {
	type indexed struct {
		i   int
		out G
	}
	wp := NewWorkerPool[int, indexed](numWorkers, len(jobs))
	wp.Start(func(i int) indexed {
		return indexed{i: i, out: fn(jobs[i])}
	})
	for i := range jobs {
		wp.AddJob(i)
	}
	wp.Close()
	wp.Wait()

	out := make([]G, len(jobs))
	for r := range wp.CollectResults() {
		out[r.i] = r.out
	}

	return out
}
