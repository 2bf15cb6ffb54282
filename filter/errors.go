package filter

import "fmt"

// CompilationError is returned when a filter expression fails to compile.
type CompilationError struct {
	Expression string
	Reason     string
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("failed to compile filter %q: %s", e.Expression, e.Reason)
}

// EvaluationError is returned when a compiled filter fails at run time or
// yields a non-boolean result.
type EvaluationError struct {
	Expression string
	Reason     string
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("failed to evaluate filter %q: %s", e.Expression, e.Reason)
}
