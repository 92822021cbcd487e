package advanced

import "github.com/pkg/errors"

// The engine is called in tight loops, and a bad ray count or radius is a
// programming error on the caller's side rather than something to thread
// through every return value. Instead, we panic with a CastError, and the
// public API recovers to convert to an error.

// CastError wraps the error so that runtime panics (which are errors too) are
// never mistaken for one of ours.
type CastError struct {
	error
}

func (e CastError) Unwrap() error {
	return e.error
}

// Panic with a CastError.
func fatalf(format string, args ...interface{}) {
	panic(CastError{errors.Errorf(format, args...)})
}

func HandleCastPanicRecover(r interface{}) error {
	if r != nil {
		if castError, ok := r.(CastError); ok {
			return castError
		}
		panic(r)
	}
	return nil
}
