package sizes

import (
	"fmt"
)

// Task is compression running in background. Result is computed exactly once.
type Task struct {
	done chan struct{}
	size int64
	err  error
}

// Start begins computing compressed size of data. Caller must not modify
// data until Wait returns.
func Start(c Compressor, data []byte) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		defer func() {
			if r := recover(); r != nil {
				t.err = &CompressionError{Algorithm: c.Name(), Err: fmt.Errorf("panic: %v", r)}
			}
		}()
		t.size, t.err = c.CompressedSize(data)
	}()
	return t
}

// Wait blocks until compression is finished. Every call returns the same
// result.
func (t *Task) Wait() (int64, error) {
	<-t.done
	return t.size, t.err
}

// Done is closed when result is available.
func (t *Task) Done() <-chan struct{} {
	return t.done
}
