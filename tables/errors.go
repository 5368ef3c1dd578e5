package tables

import "fmt"

// StepLimitError reports that a merge fixpoint exhausted its step budget.
// It is scoped to the operation that exceeded it: a grouping pass fails
// the page, a split-filter pass fails only the affected table axis.
type StepLimitError struct {
	Op    string // "segment grouping" or "split filtering"
	Limit int
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("%s exceeded %d steps", e.Op, e.Limit)
}
