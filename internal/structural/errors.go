package structural

import "fmt"

// ValidationError reports a model that cannot be solved because its
// input is inconsistent (conflicting supports, dangling member ends,
// non-positive geometry). It always names the offending entity.
type ValidationError struct {
	Entity string
	Msg    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid model: %s: %s", e.Entity, e.Msg)
}

// NumericalError reports a solve that assembled correctly but failed
// numerically, typically a singular or ill-conditioned system. It is
// distinct from ValidationError so callers can tell bad input apart
// from an unstable structure.
type NumericalError struct {
	Op  string
	Err error
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("numerical failure in %s: %v", e.Op, e.Err)
}

func (e *NumericalError) Unwrap() error {
	return e.Err
}
