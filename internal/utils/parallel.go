package utils

import (
	"errors"
	"sync"
)

// ParallelTask is one independent unit of work run by RunParallelTasks.
type ParallelTask[T any] func() (T, error)

// RunParallelTasks executes the tasks concurrently and returns their results and
// errors in task order.
func RunParallelTasks[T any](tasks []ParallelTask[T]) ([]T, []error) {
	var wg sync.WaitGroup
	results := make([]T, len(tasks))
	errs := make([]error, len(tasks))

	wg.Add(len(tasks))
	for i, task := range tasks {
		go func(index int, t ParallelTask[T]) {
			defer wg.Done()
			results[index], errs[index] = t()
		}(i, task)
	}

	wg.Wait()
	return results, errs
}

// JoinErrors collapses the per-task errors of RunParallelTasks, nil when every
// task succeeded.
func JoinErrors(errs []error) error {
	return errors.Join(errs...)
}
