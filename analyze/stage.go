package analyze

import (
	"fmt"
)

// Stage of analysis run which may fail.
// ENUM(read, parse, compress)
type Stage int

// StageError reports which stage of the run failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
