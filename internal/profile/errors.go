package profile

import "fmt"

// BuildError wraps an error with the build stage that produced it.
type BuildError struct {
	Stage Stage
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage.action(), e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
