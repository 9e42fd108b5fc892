package util

import (
	"errors"
	"fmt"
)

// Attempt records the outcome of trying one candidate in a fallback chain.
type Attempt struct {
	Candidate string
	Err       error
}

// FirstSuccess tries each candidate in order and returns the first result
// whose try function succeeds. The per-candidate errors are collected so a
// failed chain reports every cause instead of only the last one.
func FirstSuccess[T any](candidates []string, try func(string) (T, error)) (T, []Attempt, error) {
	var zero T
	attempts := make([]Attempt, 0, len(candidates))
	for _, candidate := range candidates {
		result, err := try(candidate)
		attempts = append(attempts, Attempt{Candidate: candidate, Err: err})
		if err == nil {
			return result, attempts, nil
		}
	}
	errs := make([]error, 0, len(attempts))
	for _, a := range attempts {
		errs = append(errs, fmt.Errorf("%s: %w", a.Candidate, a.Err))
	}
	if len(errs) == 0 {
		return zero, attempts, fmt.Errorf("no candidates provided")
	}
	return zero, attempts, errors.Join(errs...)
}
