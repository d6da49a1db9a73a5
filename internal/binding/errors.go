package binding

import "fmt"

// InvalidValueError reports a stored value that fails its binding's
// type/range predicate. It carries enough detail to render an
// actionable message: the offending path, a human-readable
// expectation and the actual value.
type InvalidValueError struct {
	Path     string
	Expected string
	Actual   any
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid config value at %q: expected %s, got %v", e.Path, e.Expected, e.Actual)
}
