package util

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// Op represents a function that returns a value and/or an error
type Op[T any] func() (T, error)

// Concurrent runs the operations in multiple goroutines, up to the limit of
// max_concurrent at the same time. Results are returned positionally - results[i]
// belongs to ops[i] regardless of completion order, so callers that need their
// output ordered don't have to re-sort. The zero value is left in place for any op
// that failed; its error is collected separately.
func Concurrent[T any](ops []Op[T], max_concurrent int) ([]T, []error) {
	results := make([]T, len(ops))
	var errors []error
	var mutex sync.Mutex

	var group errgroup.Group
	if max_concurrent < 1 {
		max_concurrent = 1
	}
	group.SetLimit(max_concurrent)

	for i, o := range ops {
		i, o := i, o
		group.Go(func() error {
			r, e := o()
			if e != nil {
				mutex.Lock()
				errors = append(errors, e)
				mutex.Unlock()
				return nil
			}
			results[i] = r
			return nil
		})
	}

	group.Wait()
	return results, errors
}
