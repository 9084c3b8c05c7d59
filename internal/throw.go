package internal

import "github.com/pkg/errors"

// Construction preconditions (too few polygon corners, an empty candidate list)
// are programmer errors deep inside otherwise pure geometry. Rather than give
// every constructor an error return, we panic, and the public API recovers to
// convert to an error.
//
// The wrapper is a struct rather than a bare error so that runtime errors
// (index out of range and friends) are never mistaken for a precondition.
type PreconditionError struct {
	error
}

// Panic with a PreconditionError.
func fatalf(format string, args ...interface{}) {
	panic(PreconditionError{errors.Errorf(format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if preconditionError, ok := r.(PreconditionError); ok {
			return preconditionError.error
		}
		panic(r)
	}
	return nil
}
