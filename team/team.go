package team

import (
	"sync"
)

// WorkerFunc processes a job of type T and returns a result of type U
type WorkerFunc[T any, U any] func(T) (U, error)

// Outcome pairs a job with what its worker produced
type Outcome[T any, U any] struct {
	Job    T
	Result U
	Err    error
}

// Team is a generic worker pool
// WorkerCount: number of concurrent workers
// Worker: the function to process each job
type Team[T any, U any] struct {
	WorkerCount int
	Worker      WorkerFunc[T, U]
}

type indexedJob[T any] struct {
	index int
	job   T
}

// Run feeds every job to the workers and returns one outcome per job, in the
// order the jobs were given. Failed jobs keep their error.
func (t *Team[T, U]) Run(jobs []T) []Outcome[T, U] {
	outcomes := make([]Outcome[T, U], len(jobs))
	if len(jobs) == 0 {
		return outcomes
	}
	workerCount := t.WorkerCount
	if workerCount <= 0 || workerCount > len(jobs) {
		workerCount = len(jobs)
	}

	jobChan := make(chan indexedJob[T], len(jobs))
	var wg sync.WaitGroup

	// Start workers
	for range workerCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ij := range jobChan {
				res, err := t.Worker(ij.job)
				// each index is written by exactly one worker
				outcomes[ij.index] = Outcome[T, U]{Job: ij.job, Result: res, Err: err}
			}
		}()
	}

	// Feed jobs
	for i, job := range jobs {
		jobChan <- indexedJob[T]{index: i, job: job}
	}
	close(jobChan)

	wg.Wait()
	return outcomes
}
