package ds

import (
	"errors"

	"github.com/quintans/lineards/internal/lib/fails"
)

var (
	ErrEmpty            = errors.New("container is empty")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrInvalidCapacity  = errors.New("invalid capacity")
)

func emptyError(op string) error {
	return fails.NewWithErr(ErrEmpty, op)
}

func indexError(op string, index, length int) error {
	return fails.NewWithErr(ErrIndexOutOfRange, op, "index", index, "length", length)
}
